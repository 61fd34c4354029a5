package customer

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateCustomerReq struct {
	PersonID controller.Text `json:"person_id"`
}

type UpdateCustomerReq struct {
	PersonID *controller.Text `json:"person_id"`
}

func (r CreateCustomerReq) input() validation.CustomerInput {
	return validation.CustomerInput{PersonID: r.PersonID.String()}
}

func (r UpdateCustomerReq) patch() validation.CustomerPatch {
	return validation.CustomerPatch{PersonID: r.PersonID.Ptr()}
}
