package validation

import (
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
)

type PaymentInput struct {
	RentalID string
	Amount   string
	Method   string
	// Status defaults to pending; PaymentDate defaults to now.
	Status      string
	PaymentDate string
}

type PaymentPatch struct {
	RentalID    *string
	Amount      *string
	Method      *string
	Status      *string
	PaymentDate *string
}

func rentalRef(raw string) (uuid.UUID, error) { return Ref("rental_id", "Rental ID", raw) }

func PaymentMethod(raw string) (model.PaymentMethod, error) {
	return Enum("payment_method", "Payment method", raw, model.PaymentMethods)
}

func PaymentStatus(raw string) (model.PaymentStatus, error) {
	return Enum("status", "Status", raw, model.PaymentStatuses)
}

func paymentDate(raw string) (time.Time, error) {
	return Timestamp("payment_date", "Payment date", raw)
}

func Payment(in PaymentInput, now time.Time) (model.Payment, error) {
	var c collector
	if in.Status == "" {
		in.Status = string(model.PaymentPending)
	}
	p := model.Payment{
		RentalID:    c.id(rentalRef(in.RentalID)),
		Amount:      c.dec(Amount(in.Amount)),
		PaymentDate: now.UTC(),
	}
	method, err := PaymentMethod(in.Method)
	c.add(err)
	status, err := PaymentStatus(in.Status)
	c.add(err)
	p.Method, p.Status = method, status
	if in.PaymentDate != "" {
		p.PaymentDate = c.time(paymentDate(in.PaymentDate))
	}
	return p, c.err()
}

func PatchPayment(p *model.Payment, in PaymentPatch) error {
	var c collector
	next := *p
	if v, ok := optional(&c, in.RentalID, rentalRef); ok {
		next.RentalID = v
	}
	if v, ok := optional(&c, in.Amount, Amount); ok {
		next.Amount = v
	}
	if v, ok := optional(&c, in.Method, PaymentMethod); ok {
		next.Method = v
	}
	if v, ok := optional(&c, in.Status, PaymentStatus); ok {
		next.Status = v
	}
	if in.PaymentDate != nil && *in.PaymentDate != "" {
		if v, ok := optional(&c, in.PaymentDate, paymentDate); ok {
			next.PaymentDate = v
		}
	}
	if !c.ok() {
		return c.err()
	}
	*p = next
	return nil
}
