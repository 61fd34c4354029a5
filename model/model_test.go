package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

func TestItemRentGuard(t *testing.T) {
	it := &model.InventoryItem{Status: model.ItemMaintenance}
	err := it.Rent()
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.Contains(t, err.Error(), "maintenance")
	require.Equal(t, model.ItemMaintenance, it.Status)

	it.Status = model.ItemAvailable
	require.NoError(t, it.Rent())
	require.Equal(t, model.ItemRented, it.Status)
	require.ErrorContains(t, it.Rent(), "current status: rented")

	require.NoError(t, it.Return())
	require.Equal(t, model.ItemAvailable, it.Status)
	err = it.Return()
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.Contains(t, err.Error(), "available")
}

func TestRentalMarkReturned(t *testing.T) {
	r := &model.Rental{RentalDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	require.False(t, r.IsReturned())
	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.MarkReturned(now))
	require.True(t, r.IsReturned())
	require.Equal(t, now, *r.ReturnDate)

	err := r.MarkReturned(now.Add(time.Hour))
	require.Equal(t, apperr.ErrInvalidTransition, apperr.Code(err))
	require.Equal(t, now, *r.ReturnDate)
}

func TestPaymentCompleteFailAsymmetry(t *testing.T) {
	p := &model.Payment{Status: model.PaymentPending}
	require.NoError(t, p.Complete())
	require.ErrorContains(t, p.Complete(), "Payment already completed")

	p.Fail()
	require.Equal(t, model.PaymentFailed, p.Status)
	p.Fail()
	require.Equal(t, model.PaymentFailed, p.Status)

	p.Status = model.PaymentRefunded
	p.Fail()
	require.Equal(t, model.PaymentFailed, p.Status)
}

func TestEnums(t *testing.T) {
	require.True(t, model.ItemStatus("lost").Valid())
	require.False(t, model.ItemStatus("LOST").Valid())
	require.True(t, model.PaymentMethod("pix").Valid())
	require.False(t, model.PaymentMethod("cheque").Valid())
	require.True(t, model.PaymentStatus("refunded").Valid())
}

func TestDisplayFormats(t *testing.T) {
	require.Equal(t, "123.456.789-01", model.FormatCPF("12345678901"))
	require.Equal(t, "12.345.678/0001-95", model.FormatCNPJ("12345678000195"))
	require.Equal(t, "60000-000", model.FormatZIP("60000000"))
	require.Equal(t, "(85) 99999-1234", model.FormatPhone("85999991234"))
	require.Equal(t, "123", model.FormatCPF("123"))
}

func TestRoleRecordMergesPerson(t *testing.T) {
	p := &model.Person{ID: uuid.New(), CPF: "12345678901", Name: "Ana Souza", Phone: "85999991234", Email: "ana@x.com"}
	c := model.Customer{ID: uuid.New(), PersonID: p.ID, Person: p}
	r := c.Record()
	require.Equal(t, c.ID.String(), r["id"])
	require.Equal(t, p.ID.String(), r["person_id"])
	require.Equal(t, "Ana Souza", r["name"])
	require.Equal(t, "123.456.789-01", r["cpf"])
}

func TestMoneyRenderedAsNumber(t *testing.T) {
	a := model.Album{RentalPrice: decimal.RequireFromString("9.99")}
	require.Equal(t, 9.99, a.Record()["rental_price"])

	r := model.Rental{RentalDate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	rec := r.Record()
	require.Nil(t, rec["return_date"])
	require.Equal(t, "2024-05-01T12:00:00Z", rec["rental_date"])
}
