package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemRented      ItemStatus = "rented"
	ItemMaintenance ItemStatus = "maintenance"
	ItemDamaged     ItemStatus = "damaged"
	ItemLost        ItemStatus = "lost"
)

var ItemStatuses = []ItemStatus{ItemAvailable, ItemRented, ItemMaintenance, ItemDamaged, ItemLost}

func (s ItemStatus) Valid() bool { return slices.Contains(ItemStatuses, s) }

type InventoryItem struct {
	ID        uuid.UUID  `json:"id"`
	Barcode   string     `json:"barcode"`
	AlbumID   uuid.UUID  `json:"album_id"`
	StoreID   uuid.UUID  `json:"store_id"`
	Status    ItemStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CheckAvailable refuses any item that is not available for rental.
func (i InventoryItem) CheckAvailable() error {
	if i.Status != ItemAvailable {
		return apperr.InvalidTransition(fmt.Sprintf("Item is not available for rental (current status: %s)", i.Status))
	}
	return nil
}

// Rent moves an available item to rented.
func (i *InventoryItem) Rent() error {
	if err := i.CheckAvailable(); err != nil {
		return err
	}
	i.Status = ItemRented
	return nil
}

// Return moves a rented item back to available.
func (i *InventoryItem) Return() error {
	if i.Status != ItemRented {
		return apperr.InvalidTransition(fmt.Sprintf("Item is not currently rented (current status: %s)", i.Status))
	}
	i.Status = ItemAvailable
	return nil
}

func (i InventoryItem) IsAvailable() bool { return i.Status == ItemAvailable }

func (i InventoryItem) Record() Record {
	return Record{
		"id":         i.ID.String(),
		"barcode":    i.Barcode,
		"album_id":   i.AlbumID.String(),
		"store_id":   i.StoreID.String(),
		"status":     string(i.Status),
		"created_at": timestamp(i.CreatedAt),
		"updated_at": timestamp(i.UpdatedAt),
	}
}
