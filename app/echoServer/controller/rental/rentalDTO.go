package rental

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateRentalReq struct {
	CustomerID  controller.Text `json:"customer_id"`
	ItemID      controller.Text `json:"item_id"`
	AttendantID controller.Text `json:"attendant_id"`
	RentalDate  controller.Text `json:"rental_date"`
	ReturnDate  controller.Text `json:"return_date"`
}

func (r CreateRentalReq) input() validation.RentalInput {
	return validation.RentalInput{
		CustomerID:  r.CustomerID.String(),
		ItemID:      r.ItemID.String(),
		AttendantID: r.AttendantID.String(),
		RentalDate:  r.RentalDate.String(),
		ReturnDate:  r.ReturnDate.String(),
	}
}

// UpdateRentalReq: "return_date": "" reopens the rental.
type UpdateRentalReq struct {
	CustomerID  *controller.Text `json:"customer_id"`
	ItemID      *controller.Text `json:"item_id"`
	AttendantID *controller.Text `json:"attendant_id"`
	RentalDate  *controller.Text `json:"rental_date"`
	ReturnDate  *controller.Text `json:"return_date"`
}

func (r UpdateRentalReq) patch() validation.RentalPatch {
	return validation.RentalPatch{
		CustomerID:  r.CustomerID.Ptr(),
		ItemID:      r.ItemID.Ptr(),
		AttendantID: r.AttendantID.Ptr(),
		RentalDate:  r.RentalDate.Ptr(),
		ReturnDate:  r.ReturnDate.Ptr(),
	}
}

type ListRentalQuery struct {
	CustomerID  string `query:"customer_id" validate:"omitempty,uuid"`
	ItemID      string `query:"item_id" validate:"omitempty,uuid"`
	AttendantID string `query:"attendant_id" validate:"omitempty,uuid"`
}

func (q ListRentalQuery) filter() rentalrepo.Filter {
	return rentalrepo.Filter{
		CustomerID:  controller.OptionalID(q.CustomerID),
		ItemID:      controller.OptionalID(q.ItemID),
		AttendantID: controller.OptionalID(q.AttendantID),
	}
}
