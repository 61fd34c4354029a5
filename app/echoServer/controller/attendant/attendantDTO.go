package attendant

import (
	"github.com/joaomarcosmb/cd-rental/app/echoServer/controller"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type CreateAttendantReq struct {
	PersonID controller.Text `json:"person_id"`
	StoreID  controller.Text `json:"store_id"`
}

type UpdateAttendantReq struct {
	PersonID *controller.Text `json:"person_id"`
	StoreID  *controller.Text `json:"store_id"`
}

type ListAttendantQuery struct {
	StoreID string `query:"store_id" validate:"omitempty,uuid"`
}

func (r CreateAttendantReq) input() validation.AttendantInput {
	return validation.AttendantInput{PersonID: r.PersonID.String(), StoreID: r.StoreID.String()}
}

func (r UpdateAttendantReq) patch() validation.AttendantPatch {
	return validation.AttendantPatch{PersonID: r.PersonID.Ptr(), StoreID: r.StoreID.Ptr()}
}

func (q ListAttendantQuery) filter() attendantrepo.Filter {
	return attendantrepo.Filter{StoreID: controller.OptionalID(q.StoreID)}
}
