package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

// Rental is open while ReturnDate is nil; returned is terminal.
type Rental struct {
	ID          uuid.UUID  `json:"id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	ItemID      uuid.UUID  `json:"item_id"`
	AttendantID uuid.UUID  `json:"attendant_id"`
	RentalDate  time.Time  `json:"rental_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (r Rental) IsReturned() bool { return r.ReturnDate != nil }

// MarkReturned closes an open rental at now.
func (r *Rental) MarkReturned(now time.Time) error {
	if r.IsReturned() {
		return apperr.InvalidTransition("Rental already returned")
	}
	t := now.UTC()
	r.ReturnDate = &t
	return nil
}

func (r Rental) Record() Record {
	var ret any
	if r.ReturnDate != nil {
		ret = timestamp(*r.ReturnDate)
	}
	return Record{
		"id":           r.ID.String(),
		"customer_id":  r.CustomerID.String(),
		"item_id":      r.ItemID.String(),
		"attendant_id": r.AttendantID.String(),
		"rental_date":  timestamp(r.RentalDate),
		"return_date":  ret,
		"created_at":   timestamp(r.CreatedAt),
		"updated_at":   timestamp(r.UpdatedAt),
	}
}
