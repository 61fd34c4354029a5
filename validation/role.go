package validation

import (
	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
)

func personRef(raw string) (uuid.UUID, error) { return Ref("person_id", "Person ID", raw) }

type CustomerInput struct {
	PersonID string
}

func Customer(in CustomerInput) (model.Customer, error) {
	var c collector
	cu := model.Customer{PersonID: c.id(personRef(in.PersonID))}
	return cu, c.err()
}

// CustomerPatch moves the customer role to another person.
type CustomerPatch struct {
	PersonID *string
}

func PatchCustomer(cu *model.Customer, in CustomerPatch) error {
	var c collector
	next := *cu
	if v, ok := optional(&c, in.PersonID, personRef); ok {
		next.PersonID = v
	}
	if !c.ok() {
		return c.err()
	}
	*cu = next
	return nil
}

type AttendantInput struct {
	PersonID string
	StoreID  string
}

type AttendantPatch struct {
	PersonID *string
	StoreID  *string
}

func Attendant(in AttendantInput) (model.Attendant, error) {
	var c collector
	a := model.Attendant{
		PersonID: c.id(personRef(in.PersonID)),
		StoreID:  c.id(storeRef(in.StoreID)),
	}
	return a, c.err()
}

func PatchAttendant(a *model.Attendant, in AttendantPatch) error {
	var c collector
	next := *a
	if v, ok := optional(&c, in.PersonID, personRef); ok {
		next.PersonID = v
	}
	if v, ok := optional(&c, in.StoreID, storeRef); ok {
		next.StoreID = v
	}
	if !c.ok() {
		return c.err()
	}
	*a = next
	return nil
}
