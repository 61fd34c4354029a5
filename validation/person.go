package validation

import "github.com/joaomarcosmb/cd-rental/model"

type PersonInput struct {
	CPF   string
	Name  string
	Phone string
	Email string
}

// PersonPatch carries only the supplied fields; nil means untouched.
type PersonPatch struct {
	CPF   *string
	Name  *string
	Phone *string
	Email *string
}

func Person(in PersonInput) (model.Person, error) {
	var c collector
	p := model.Person{
		CPF:   c.str(CPF(in.CPF)),
		Name:  c.str(Name(in.Name)),
		Phone: c.str(Phone(in.Phone)),
		Email: c.str(Email(in.Email)),
	}
	return p, c.err()
}

// PatchPerson applies the supplied fields to p, or leaves p untouched when
// any of them is invalid.
func PatchPerson(p *model.Person, in PersonPatch) error {
	var c collector
	next := *p
	if v, ok := optional(&c, in.CPF, CPF); ok {
		next.CPF = v
	}
	if v, ok := optional(&c, in.Name, Name); ok {
		next.Name = v
	}
	if v, ok := optional(&c, in.Phone, Phone); ok {
		next.Phone = v
	}
	if v, ok := optional(&c, in.Email, Email); ok {
		next.Email = v
	}
	if !c.ok() {
		return c.err()
	}
	*p = next
	return nil
}
