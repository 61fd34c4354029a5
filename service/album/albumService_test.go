package albumsvc_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/repository/memory"
	albumrepo "github.com/joaomarcosmb/cd-rental/repository/album"
	albumsvc "github.com/joaomarcosmb/cd-rental/service/album"
	inventorysvc "github.com/joaomarcosmb/cd-rental/service/inventory"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s := albumsvc.New(memory.New())

	for _, in := range []validation.AlbumInput{
		{Title: "Thriller", Artist: "Michael Jackson", Genre: "Pop", RentalPrice: "9.99"},
		{Title: "Bad", Artist: "Michael Jackson", Genre: "Pop", RentalPrice: "8.50"},
		{Title: "Kind of Blue", Artist: "Miles Davis", Genre: "Jazz", RentalPrice: "12"},
	} {
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}

	got, err := s.ByArtist(ctx, "jackson")
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = s.ByGenre(ctx, "JAZ")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.Search(ctx, albumrepo.Filter{Title: "thr", Artist: "michael"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 9.99, got[0].Record()["rental_price"])

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestPriceRules(t *testing.T) {
	ctx := context.Background()
	s := albumsvc.New(memory.New())

	_, err := s.Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "MJ", Genre: "Pop", RentalPrice: "abc"})
	require.ErrorContains(t, err, "must be a valid number")
	_, err = s.Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "MJ", Genre: "Pop", RentalPrice: "-1"})
	require.ErrorContains(t, err, "must be positive")

	a, err := s.Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "MJ", Genre: "Pop", RentalPrice: "9.999"})
	require.NoError(t, err)
	require.True(t, a.RentalPrice.Equal(decimal.RequireFromString("10")))
}

func TestDeleteWithInventory(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := albumsvc.New(store)

	a, err := s.Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "MJ", Genre: "Pop", RentalPrice: "9.99"})
	require.NoError(t, err)
	st, err := storesvc.New(store).Create(ctx, validation.StoreInput{CNPJ: "12345678000195", TradeName: "Disco"})
	require.NoError(t, err)
	items := inventorysvc.New(store, nil)
	it, err := items.Create(ctx, validation.InventoryItemInput{Barcode: "mj-001", AlbumID: a.ID.String(), StoreID: st.ID.String()})
	require.NoError(t, err)

	err = s.Delete(ctx, a.ID)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	require.ErrorContains(t, err, "Cannot delete album with existing inventory items")

	require.NoError(t, items.Delete(ctx, it.ID))
	require.NoError(t, s.Delete(ctx, a.ID))
}
