package validation

import (
	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
)

type AlbumInput struct {
	Title       string
	Artist      string
	Genre       string
	RentalPrice string
}

type AlbumPatch struct {
	Title       *string
	Artist      *string
	Genre       *string
	RentalPrice *string
}

func Album(in AlbumInput) (model.Album, error) {
	var c collector
	a := model.Album{
		Title:       c.str(Title(in.Title)),
		RentalPrice: c.dec(RentalPrice(in.RentalPrice)),
		Artist:      c.str(Artist(in.Artist)),
		Genre:       c.str(Genre(in.Genre)),
	}
	return a, c.err()
}

func PatchAlbum(a *model.Album, in AlbumPatch) error {
	var c collector
	next := *a
	if v, ok := optional(&c, in.Title, Title); ok {
		next.Title = v
	}
	if v, ok := optional(&c, in.RentalPrice, RentalPrice); ok {
		next.RentalPrice = v
	}
	if v, ok := optional(&c, in.Artist, Artist); ok {
		next.Artist = v
	}
	if v, ok := optional(&c, in.Genre, Genre); ok {
		next.Genre = v
	}
	if !c.ok() {
		return c.err()
	}
	*a = next
	return nil
}

type InventoryItemInput struct {
	Barcode string
	AlbumID string
	StoreID string
	// Status defaults to available when empty.
	Status string
}

type InventoryItemPatch struct {
	Barcode *string
	AlbumID *string
	StoreID *string
	Status  *string
}

func albumRef(raw string) (uuid.UUID, error) { return Ref("album_id", "Album ID", raw) }

// ItemStatus normalizes an inventory status against the closed set.
func ItemStatus(raw string) (model.ItemStatus, error) {
	return Enum("status", "Status", raw, model.ItemStatuses)
}

func InventoryItem(in InventoryItemInput) (model.InventoryItem, error) {
	var c collector
	if in.Status == "" {
		in.Status = string(model.ItemAvailable)
	}
	it := model.InventoryItem{
		Barcode: c.str(Barcode(in.Barcode)),
		AlbumID: c.id(albumRef(in.AlbumID)),
		StoreID: c.id(storeRef(in.StoreID)),
	}
	status, err := ItemStatus(in.Status)
	c.add(err)
	it.Status = status
	return it, c.err()
}

func PatchInventoryItem(it *model.InventoryItem, in InventoryItemPatch) error {
	var c collector
	next := *it
	if v, ok := optional(&c, in.Barcode, Barcode); ok {
		next.Barcode = v
	}
	if v, ok := optional(&c, in.AlbumID, albumRef); ok {
		next.AlbumID = v
	}
	if v, ok := optional(&c, in.StoreID, storeRef); ok {
		next.StoreID = v
	}
	if v, ok := optional(&c, in.Status, ItemStatus); ok {
		next.Status = v
	}
	if !c.ok() {
		return c.err()
	}
	*it = next
	return nil
}
