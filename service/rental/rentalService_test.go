package rentalsvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	albumsvc "github.com/joaomarcosmb/cd-rental/service/album"
	attendantsvc "github.com/joaomarcosmb/cd-rental/service/attendant"
	customersvc "github.com/joaomarcosmb/cd-rental/service/customer"
	inventorysvc "github.com/joaomarcosmb/cd-rental/service/inventory"
	paymentsvc "github.com/joaomarcosmb/cd-rental/service/payment"
	personsvc "github.com/joaomarcosmb/cd-rental/service/person"
	rentalsvc "github.com/joaomarcosmb/cd-rental/service/rental"
	storesvc "github.com/joaomarcosmb/cd-rental/service/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

// failCommit runs fn normally and then refuses to commit.
type failCommit struct{ *memory.Store }

var errCommit = errors.New("commit failed")

func (f failCommit) InTx(ctx context.Context, fn func(r repository.Repos) error) error {
	return f.Store.InTx(ctx, func(r repository.Repos) error {
		if err := fn(r); err != nil {
			return err
		}
		return errCommit
	})
}

type fixture struct {
	store     *memory.Store
	customer  *model.Customer
	attendant *model.Attendant
	item      *model.InventoryItem
	items     inventorysvc.Service
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	persons := personsvc.New(store)
	a, err := persons.Create(ctx, validation.PersonInput{CPF: "123.456.789-01", Name: "ana souza", Phone: "(85) 99999-1234", Email: "Ana@Example.com"})
	require.NoError(t, err)
	b, err := persons.Create(ctx, validation.PersonInput{CPF: "10987654321", Name: "bruno lima", Phone: "85999994321", Email: "bruno@example.com"})
	require.NoError(t, err)

	cu, err := customersvc.New(store).Create(ctx, validation.CustomerInput{PersonID: a.ID.String()})
	require.NoError(t, err)

	st, err := storesvc.New(store).Create(ctx, validation.StoreInput{CNPJ: "12.345.678/0001-95", TradeName: "disco de vinil"})
	require.NoError(t, err)
	at, err := attendantsvc.New(store).Create(ctx, validation.AttendantInput{PersonID: b.ID.String(), StoreID: st.ID.String()})
	require.NoError(t, err)

	al, err := albumsvc.New(store).Create(ctx, validation.AlbumInput{Title: "Thriller", Artist: "Michael Jackson", Genre: "Pop", RentalPrice: "9.99"})
	require.NoError(t, err)

	items := inventorysvc.New(store, nil)
	it, err := items.Create(ctx, validation.InventoryItemInput{Barcode: "MJ-001", AlbumID: al.ID.String(), StoreID: st.ID.String()})
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, it.Status)

	return fixture{store: store, customer: cu, attendant: at, item: it, items: items}
}

func (f fixture) input() validation.RentalInput {
	return validation.RentalInput{
		CustomerID:  f.customer.ID.String(),
		ItemID:      f.item.ID.String(),
		AttendantID: f.attendant.ID.String(),
	}
}

func TestOpenAndCloseRental(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	m := metrics.New(prometheus.NewRegistry())
	svc := rentalsvc.New(f.store, m)

	rt, err := svc.Open(ctx, f.input())
	require.NoError(t, err)
	require.Nil(t, rt.ReturnDate)
	require.Nil(t, rt.Record()["return_date"])

	it, err := f.items.Get(ctx, f.item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemRented, it.Status)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	closed, err := svc.Close(ctx, rt.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ReturnDate)

	it, err = f.items.Get(ctx, f.item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, it.Status)

	returned, err := svc.Returned(ctx)
	require.NoError(t, err)
	require.Len(t, returned, 1)

	_, err = svc.Close(ctx, rt.ID)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))

	require.Equal(t, 1.0, testutil.ToFloat64(m.RentalsOpened))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RentalsClosed))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("return", "rejected")))
}

func TestOpenRejectsUnavailableItem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	_, err := f.items.UpdateStatus(ctx, f.item.ID, "maintenance")
	require.NoError(t, err)

	_, err = svc.Open(ctx, f.input())
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "maintenance")

	all, err := svc.List(ctx, rentalrepo.Filter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestOpenTwiceOnSameItem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	_, err := svc.Open(ctx, f.input())
	require.NoError(t, err)
	_, err = svc.Open(ctx, f.input())
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "rented")
}

func TestFailedCommitLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(failCommit{f.store}, nil)

	_, err := svc.Open(ctx, f.input())
	require.ErrorIs(t, err, errCommit)
	require.Equal(t, apperr.ErrUnexpected, apperr.Code(err))

	it, err := f.items.Get(ctx, f.item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, it.Status)

	all, err := rentalsvc.New(f.store, nil).List(ctx, rentalrepo.Filter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFailedCommitOnCloseKeepsRentalOpen(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	rt, err := rentalsvc.New(f.store, nil).Open(ctx, f.input())
	require.NoError(t, err)

	_, err = rentalsvc.New(failCommit{f.store}, nil).Close(ctx, rt.ID)
	require.ErrorIs(t, err, errCommit)

	got, err := rentalsvc.New(f.store, nil).Get(ctx, rt.ID)
	require.NoError(t, err)
	require.Nil(t, got.ReturnDate)
	it, err := f.items.Get(ctx, f.item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemRented, it.Status)
}

func TestOpenDateOrdering(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	in := f.input()
	in.RentalDate = "2024-01-10T10:00:00"
	in.ReturnDate = "2024-01-10T10:00:00"
	_, err := svc.Open(ctx, in)
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
	require.ErrorContains(t, err, "Return date must be after rental date")

	in.ReturnDate = "2024-01-12T10:00:00Z"
	rt, err := svc.Open(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, rt.ReturnDate)

	// A rental recorded as already returned does not hold the item.
	it, err := f.items.Get(ctx, f.item.ID)
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, it.Status)
}

func TestOpenReportsEveryMissingReference(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	_, err := svc.Open(ctx, validation.RentalInput{
		CustomerID:  uuid.NewString(),
		ItemID:      f.item.ID.String(),
		AttendantID: uuid.NewString(),
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.ErrNotFound, e.Code)
	require.Equal(t, []string{"Customer not found", "Attendant not found"}, e.Messages())
}

func TestUpdateKeepsItemsInSync(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	rt, err := svc.Open(ctx, f.input())
	require.NoError(t, err)

	ret := "2099-01-01T00:00:00Z"
	_, err = svc.Update(ctx, rt.ID, validation.RentalPatch{ReturnDate: &ret})
	require.NoError(t, err)
	it, _ := f.items.Get(ctx, f.item.ID)
	require.Equal(t, model.ItemAvailable, it.Status)

	reopen := ""
	_, err = svc.Update(ctx, rt.ID, validation.RentalPatch{ReturnDate: &reopen})
	require.NoError(t, err)
	it, _ = f.items.Get(ctx, f.item.ID)
	require.Equal(t, model.ItemRented, it.Status)

	_, err = svc.Update(ctx, uuid.New(), validation.RentalPatch{})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestOpenClosedRentalStillNeedsAvailableItem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	_, err := f.items.UpdateStatus(ctx, f.item.ID, "maintenance")
	require.NoError(t, err)

	in := f.input()
	in.RentalDate = "2024-01-01T10:00:00"
	in.ReturnDate = "2024-01-05T10:00:00"
	_, err = svc.Open(ctx, in)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "maintenance")

	all, err := svc.List(ctx, rentalrepo.Filter{})
	require.NoError(t, err)
	require.Empty(t, all)
	it, _ := f.items.Get(ctx, f.item.ID)
	require.Equal(t, model.ItemMaintenance, it.Status)
}

func (f fixture) secondItem(t *testing.T, barcode string) *model.InventoryItem {
	t.Helper()
	it, err := f.items.Create(context.Background(), validation.InventoryItemInput{
		Barcode: barcode,
		AlbumID: f.item.AlbumID.String(),
		StoreID: f.item.StoreID.String(),
	})
	require.NoError(t, err)
	return it
}

func TestUpdateMovesOpenRentalToAnotherItem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	rt, err := svc.Open(ctx, f.input())
	require.NoError(t, err)

	broken := f.secondItem(t, "MJ-002")
	_, err = f.items.UpdateStatus(ctx, broken.ID, "damaged")
	require.NoError(t, err)

	target := broken.ID.String()
	_, err = svc.Update(ctx, rt.ID, validation.RentalPatch{ItemID: &target})
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "damaged")

	it, _ := f.items.Get(ctx, f.item.ID)
	require.Equal(t, model.ItemRented, it.Status)
	got, err := svc.Get(ctx, rt.ID)
	require.NoError(t, err)
	require.Equal(t, f.item.ID, got.ItemID)

	spare := f.secondItem(t, "MJ-003")
	target = spare.ID.String()
	got, err = svc.Update(ctx, rt.ID, validation.RentalPatch{ItemID: &target})
	require.NoError(t, err)
	require.Equal(t, spare.ID, got.ItemID)

	it, _ = f.items.Get(ctx, f.item.ID)
	require.Equal(t, model.ItemAvailable, it.Status)
	it, _ = f.items.Get(ctx, spare.ID)
	require.Equal(t, model.ItemRented, it.Status)
}

func TestUpdateClosedRentalChecksNewItem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	in := f.input()
	in.RentalDate = "2024-01-01T10:00:00"
	in.ReturnDate = "2024-01-05T10:00:00"
	rt, err := svc.Open(ctx, in)
	require.NoError(t, err)

	lost := f.secondItem(t, "MJ-002")
	_, err = f.items.UpdateStatus(ctx, lost.ID, "lost")
	require.NoError(t, err)

	target := lost.ID.String()
	_, err = svc.Update(ctx, rt.ID, validation.RentalPatch{ItemID: &target})
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "lost")

	spare := f.secondItem(t, "MJ-003")
	target = spare.ID.String()
	got, err := svc.Update(ctx, rt.ID, validation.RentalPatch{ItemID: &target})
	require.NoError(t, err)
	require.Equal(t, spare.ID, got.ItemID)

	// a returned rental does not hold its item
	it, _ := f.items.Get(ctx, spare.ID)
	require.Equal(t, model.ItemAvailable, it.Status)
}

func TestDeleteGuards(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	svc := rentalsvc.New(f.store, nil)

	rt, err := svc.Open(ctx, f.input())
	require.NoError(t, err)
	require.Equal(t, apperr.ErrConflict, apperr.Code(svc.Delete(ctx, rt.ID)))
	require.Equal(t, apperr.ErrConflict, apperr.Code(f.items.Delete(ctx, f.item.ID)))

	_, err = svc.Close(ctx, rt.ID)
	require.NoError(t, err)

	_, err = paymentsvc.New(f.store, nil).Create(ctx, validation.PaymentInput{RentalID: rt.ID.String(), Amount: "9.99", Method: "pix"})
	require.NoError(t, err)
	err = svc.Delete(ctx, rt.ID)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	require.ErrorContains(t, err, "payments")

	payments, err := svc.Payments(ctx, rt.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	history, err := customersvc.New(f.store).Rentals(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}
