package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

type PaymentMethod string

const (
	MethodCash       PaymentMethod = "cash"
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodPix        PaymentMethod = "pix"
)

var PaymentMethods = []PaymentMethod{MethodCash, MethodCreditCard, MethodDebitCard, MethodPix}

func (m PaymentMethod) Valid() bool { return slices.Contains(PaymentMethods, m) }

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded}

func (s PaymentStatus) Valid() bool { return slices.Contains(PaymentStatuses, s) }

type Payment struct {
	ID          uuid.UUID       `json:"id"`
	RentalID    uuid.UUID       `json:"rental_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"payment_method"`
	Status      PaymentStatus   `json:"status"`
	PaymentDate time.Time       `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p Payment) IsCompleted() bool { return p.Status == PaymentCompleted }

// Complete is refused only when the payment is already completed.
func (p *Payment) Complete() error {
	if p.IsCompleted() {
		return apperr.InvalidTransition("Payment already completed")
	}
	p.Status = PaymentCompleted
	return nil
}

// Fail always succeeds, including on failed or refunded payments.
func (p *Payment) Fail() { p.Status = PaymentFailed }

func (p Payment) Record() Record {
	return Record{
		"id":             p.ID.String(),
		"rental_id":      p.RentalID.String(),
		"amount":         money(p.Amount),
		"payment_method": string(p.Method),
		"status":         string(p.Status),
		"payment_date":   timestamp(p.PaymentDate),
		"created_at":     timestamp(p.CreatedAt),
		"updated_at":     timestamp(p.UpdatedAt),
	}
}
