package payment

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreatePaymentReq struct {
	RentalID    controller.Text `json:"rental_id"`
	Amount      controller.Text `json:"amount"`
	Method      controller.Text `json:"payment_method"`
	Status      controller.Text `json:"status"`
	PaymentDate controller.Text `json:"payment_date"`
}

func (r CreatePaymentReq) input() validation.PaymentInput {
	return validation.PaymentInput{
		RentalID:    r.RentalID.String(),
		Amount:      r.Amount.String(),
		Method:      r.Method.String(),
		Status:      r.Status.String(),
		PaymentDate: r.PaymentDate.String(),
	}
}

type UpdatePaymentReq struct {
	RentalID    *controller.Text `json:"rental_id"`
	Amount      *controller.Text `json:"amount"`
	Method      *controller.Text `json:"payment_method"`
	Status      *controller.Text `json:"status"`
	PaymentDate *controller.Text `json:"payment_date"`
}

func (r UpdatePaymentReq) patch() validation.PaymentPatch {
	return validation.PaymentPatch{
		RentalID:    r.RentalID.Ptr(),
		Amount:      r.Amount.Ptr(),
		Method:      r.Method.Ptr(),
		Status:      r.Status.Ptr(),
		PaymentDate: r.PaymentDate.Ptr(),
	}
}
