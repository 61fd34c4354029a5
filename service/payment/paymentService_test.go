package paymentsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository/memory"
	paymentsvc "github.com/joaomarcosmb/cd-rental/service/payment"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

// rental inserts a returned rental directly; payments only need it to exist.
func rental(t *testing.T, store *memory.Store) uuid.UUID {
	t.Helper()
	now := time.Now().UTC()
	rt := model.Rental{
		ID: uuid.New(), CustomerID: uuid.New(), ItemID: uuid.New(), AttendantID: uuid.New(),
		RentalDate: now.Add(-time.Hour), ReturnDate: &now, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, store.Repos().Rentals.Insert(context.Background(), &rt))
	return rt.ID
}

func TestCreateDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := paymentsvc.New(store, nil)
	rid := rental(t, store)

	p, err := s.Create(ctx, validation.PaymentInput{RentalID: rid.String(), Amount: "9.99", Method: "PIX"})
	require.NoError(t, err)
	require.Equal(t, model.PaymentPending, p.Status)
	require.Equal(t, model.MethodPix, p.Method)
	require.False(t, p.PaymentDate.IsZero())

	_, err = s.Create(ctx, validation.PaymentInput{RentalID: uuid.NewString(), Amount: "9.99", Method: "cash"})
	require.ErrorContains(t, err, "Rental not found")

	_, err = s.Create(ctx, validation.PaymentInput{RentalID: "x", Amount: "0", Method: "cheque", Status: "lost", PaymentDate: "yesterday"})
	require.Len(t, apperr.Fields(err), 5)
}

func TestCompleteAndFail(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	m := metrics.New(prometheus.NewRegistry())
	s := paymentsvc.New(store, m)
	rid := rental(t, store)

	p, err := s.Create(ctx, validation.PaymentInput{RentalID: rid.String(), Amount: "9.99", Method: "cash"})
	require.NoError(t, err)

	got, err := s.Complete(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentCompleted, got.Status)

	_, err = s.Complete(ctx, p.ID)
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.ErrorContains(t, err, "Payment already completed")

	// Fail is accepted from any status, twice in a row included.
	got, err = s.Fail(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentFailed, got.Status)
	_, err = s.Fail(ctx, p.ID)
	require.NoError(t, err)

	_, err = s.Complete(ctx, uuid.New())
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	require.Equal(t, 1.0, testutil.ToFloat64(m.PaymentTransitions.WithLabelValues("complete", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PaymentTransitions.WithLabelValues("complete", "rejected")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.PaymentTransitions.WithLabelValues("fail", "ok")))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := paymentsvc.New(store, nil)
	rid := rental(t, store)

	for _, method := range []string{"cash", "pix", "pix"} {
		_, err := s.Create(ctx, validation.PaymentInput{RentalID: rid.String(), Amount: "5", Method: method})
		require.NoError(t, err)
	}

	pix, err := s.ListByMethod(ctx, "pix")
	require.NoError(t, err)
	require.Len(t, pix, 2)

	pending, err := s.ListByStatus(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 3)

	_, err = s.ListByMethod(ctx, "cheque")
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))

	amount := "12.50"
	got, err := s.Update(ctx, pix[0].ID, validation.PaymentPatch{Amount: &amount})
	require.NoError(t, err)
	require.Equal(t, 12.5, got.Record()["amount"])

	require.NoError(t, s.Delete(ctx, got.ID))
	require.Equal(t, apperr.ErrNotFound, apperr.Code(s.Delete(ctx, got.ID)))
}
