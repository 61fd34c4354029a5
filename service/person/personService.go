package personsvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	customerrepo "github.com/joaomarcosmb/cd-rental/repository/customer"
	personrepo "github.com/joaomarcosmb/cd-rental/repository/person"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.PersonInput) (*model.Person, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Person, error)
	List(ctx context.Context) ([]model.Person, error)
	Update(ctx context.Context, id uuid.UUID, in validation.PersonPatch) (*model.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

// unique rejects a CPF or email already held by another person.
func unique(ctx context.Context, r personrepo.Repo, p *model.Person, exclude *uuid.UUID) error {
	taken, err := r.ExistsWithUniqueField(ctx, personrepo.FieldCPF, p.CPF, exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("CPF already registered")
	}
	taken, err = r.ExistsWithUniqueField(ctx, personrepo.FieldEmail, p.Email, exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Email already registered")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.PersonInput) (*model.Person, error) {
	p, err := validation.Person(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.ID, p.CreatedAt, p.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := unique(ctx, r.Persons, &p, nil); err != nil {
			return err
		}
		return r.Persons.Insert(ctx, &p)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &p, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	p, err := s.store.Repos().Persons.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if p == nil {
		return nil, apperr.NotFound("Person not found")
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]model.Person, error) {
	out, err := s.store.Repos().Persons.FindAll(ctx)
	return out, apperr.Translate(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.PersonPatch) (*model.Person, error) {
	var out *model.Person
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		p, err := r.Persons.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("Person not found")
		}
		if err := validation.PatchPerson(p, in); err != nil {
			return err
		}
		if err := unique(ctx, r.Persons, p, &p.ID); err != nil {
			return err
		}
		p.UpdatedAt = time.Now().UTC()
		if err := r.Persons.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		p, err := r.Persons.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("Person not found")
		}
		customers, err := r.Customers.Count(ctx, customerrepo.Filter{PersonID: &id})
		if err != nil {
			return err
		}
		attendants, err := r.Attendants.Count(ctx, attendantrepo.Filter{PersonID: &id})
		if err != nil {
			return err
		}
		if customers+attendants > 0 {
			return apperr.Conflict("Cannot delete person with a customer or attendant role")
		}
		return r.Persons.Delete(ctx, id)
	})
	return apperr.Translate(err)
}
