package inventorysvc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	albumsvc "github.com/joaomarcosmb/cd-rental/service/album"
	inventorysvc "github.com/joaomarcosmb/cd-rental/service/inventory"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type refs struct {
	album, store uuid.UUID
}

func seed(t *testing.T, store *memory.Store) refs {
	t.Helper()
	ctx := context.Background()
	a, err := albumsvc.New(store).Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "Michael Jackson", Genre: "Pop", RentalPrice: "9.99"})
	require.NoError(t, err)
	st, err := storesvc.New(store).Create(ctx, validation.StoreInput{CNPJ: "12345678000195", TradeName: "Disco"})
	require.NoError(t, err)
	return refs{album: a.ID, store: st.ID}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := seed(t, store)
	s := inventorysvc.New(store, nil)

	_, err := s.Create(ctx, validation.InventoryItemInput{Barcode: "mj 001", AlbumID: r.album.String(), StoreID: r.store.String(), Status: "sold"})
	require.Len(t, apperr.Fields(err), 2)

	_, err = s.Create(ctx, validation.InventoryItemInput{Barcode: "MJ-001", AlbumID: uuid.NewString(), StoreID: r.store.String()})
	require.ErrorContains(t, err, "Album not found")

	it, err := s.Create(ctx, validation.InventoryItemInput{Barcode: " mj-001 ", AlbumID: r.album.String(), StoreID: r.store.String()})
	require.NoError(t, err)
	require.Equal(t, "MJ-001", it.Barcode)
	require.Equal(t, model.ItemAvailable, it.Status)

	_, err = s.Create(ctx, validation.InventoryItemInput{Barcode: "MJ-001", AlbumID: r.album.String(), StoreID: r.store.String()})
	require.ErrorContains(t, err, "Barcode already registered")

	got, err := s.GetByBarcode(ctx, "mj-001")
	require.NoError(t, err)
	require.Equal(t, it.ID, got.ID)

	_, err = s.GetByBarcode(ctx, "ZZ-999")
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestRentReturnGuards(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := seed(t, store)
	m := metrics.New(prometheus.NewRegistry())
	s := inventorysvc.New(store, m)

	it, err := s.Create(ctx, validation.InventoryItemInput{Barcode: "MJ-001", AlbumID: r.album.String(), StoreID: r.store.String(), Status: "Maintenance"})
	require.NoError(t, err)
	require.Equal(t, model.ItemMaintenance, it.Status)

	_, err = s.Rent(ctx, it.ID)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "maintenance")

	_, err = s.UpdateStatus(ctx, it.ID, "available")
	require.NoError(t, err)

	got, err := s.Rent(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemRented, got.Status)
	_, err = s.Rent(ctx, it.ID)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))

	got, err = s.Return(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, got.Status)
	_, err = s.Return(ctx, it.ID)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))

	_, err = s.Rent(ctx, uuid.New())
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	require.Equal(t, 1.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("rent", "ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("rent", "rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("return", "rejected")))
}

func TestListings(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := seed(t, store)
	s := inventorysvc.New(store, nil)

	for _, in := range []validation.InventoryItemInput{
		{Barcode: "MJ-001", Status: "available"},
		{Barcode: "MJ-002", Status: "damaged"},
		{Barcode: "MJ-003", Status: "available"},
	} {
		in.AlbumID, in.StoreID = r.album.String(), r.store.String()
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}

	avail, err := s.Available(ctx, &r.album, nil)
	require.NoError(t, err)
	require.Len(t, avail, 2)

	damaged, err := s.ListByStatus(ctx, " DAMAGED ")
	require.NoError(t, err)
	require.Len(t, damaged, 1)

	_, err = s.ListByStatus(ctx, "sold")
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
	require.ErrorContains(t, err, "Status must be one of: available, rented, maintenance, damaged, lost")

	byStore, err := s.List(ctx, inventoryrepo.Filter{StoreID: &r.store})
	require.NoError(t, err)
	require.Len(t, byStore, 3)

	_, err = s.UpdateStatus(ctx, byStore[0].ID, "sold")
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}
