package person

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreatePersonReq struct {
	CPF   controller.Text `json:"cpf"`
	Name  controller.Text `json:"name"`
	Phone controller.Text `json:"phone"`
	Email controller.Text `json:"email"`
}

func (r CreatePersonReq) input() validation.PersonInput {
	return validation.PersonInput{CPF: r.CPF.String(), Name: r.Name.String(), Phone: r.Phone.String(), Email: r.Email.String()}
}

type UpdatePersonReq struct {
	CPF   *controller.Text `json:"cpf"`
	Name  *controller.Text `json:"name"`
	Phone *controller.Text `json:"phone"`
	Email *controller.Text `json:"email"`
}

func (r UpdatePersonReq) patch() validation.PersonPatch {
	return validation.PersonPatch{CPF: r.CPF.Ptr(), Name: r.Name.Ptr(), Phone: r.Phone.Ptr(), Email: r.Email.Ptr()}
}
