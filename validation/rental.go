package validation

import (
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
)

type RentalInput struct {
	CustomerID  string
	ItemID      string
	AttendantID string
	// RentalDate defaults to now when empty; ReturnDate stays open when empty.
	RentalDate string
	ReturnDate string
}

// RentalPatch: a ReturnDate pointing at "" reopens the rental.
type RentalPatch struct {
	CustomerID  *string
	ItemID      *string
	AttendantID *string
	RentalDate  *string
	ReturnDate  *string
}

func itemRef(raw string) (uuid.UUID, error)      { return Ref("item_id", "Item ID", raw) }
func attendantRef(raw string) (uuid.UUID, error) { return Ref("attendant_id", "Attendant ID", raw) }

func rentalDate(raw string) (time.Time, error) {
	return Timestamp("rental_date", "Rental date", raw)
}

func returnDate(raw string) (time.Time, error) {
	return Timestamp("return_date", "Return date", raw)
}

func Rental(in RentalInput, now time.Time) (model.Rental, error) {
	var c collector
	r := model.Rental{
		CustomerID:  c.id(customerRef(in.CustomerID)),
		ItemID:      c.id(itemRef(in.ItemID)),
		AttendantID: c.id(attendantRef(in.AttendantID)),
		RentalDate:  now.UTC(),
	}

	rentalOK := true
	if in.RentalDate != "" {
		t, err := rentalDate(in.RentalDate)
		c.add(err)
		rentalOK = err == nil
		r.RentalDate = t
	}
	if in.ReturnDate != "" {
		t, err := returnDate(in.ReturnDate)
		switch {
		case err != nil:
			c.add(err)
		case !rentalOK:
			// ordering is only checked against a valid rental date
		case !t.After(r.RentalDate):
			c.add(fail("return_date", "Return date must be after rental date"))
		default:
			r.ReturnDate = &t
		}
	}
	return r, c.err()
}

// PatchRental keeps rental_date < return_date against whichever bound is in
// effect after the patch.
func PatchRental(r *model.Rental, in RentalPatch) error {
	var c collector
	next := *r
	if v, ok := optional(&c, in.CustomerID, customerRef); ok {
		next.CustomerID = v
	}
	if v, ok := optional(&c, in.ItemID, itemRef); ok {
		next.ItemID = v
	}
	if v, ok := optional(&c, in.AttendantID, attendantRef); ok {
		next.AttendantID = v
	}

	datesOK := true
	if in.RentalDate != nil && *in.RentalDate != "" {
		if v, ok := optional(&c, in.RentalDate, rentalDate); ok {
			next.RentalDate = v
		} else {
			datesOK = false
		}
	}
	if in.ReturnDate != nil {
		if *in.ReturnDate == "" {
			next.ReturnDate = nil
		} else if v, ok := optional(&c, in.ReturnDate, returnDate); ok {
			next.ReturnDate = &v
		} else {
			datesOK = false
		}
	}
	if datesOK && next.ReturnDate != nil && !next.ReturnDate.After(next.RentalDate) {
		if in.ReturnDate != nil {
			c.add(fail("return_date", "Return date must be after rental date"))
		} else {
			c.add(fail("rental_date", "Rental date must be before return date"))
		}
	}

	if !c.ok() {
		return c.err()
	}
	*r = next
	return nil
}
