package attendantsvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.AttendantInput) (*model.Attendant, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Attendant, error)
	List(ctx context.Context, f attendantrepo.Filter) ([]model.Attendant, error)
	Update(ctx context.Context, id uuid.UUID, in validation.AttendantPatch) (*model.Attendant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

// refs resolves the person and store, then enforces one attendant role per
// person.
func refs(ctx context.Context, r repository.Repos, a *model.Attendant, exclude *uuid.UUID) error {
	var missing []string
	p, err := r.Persons.FindByID(ctx, a.PersonID)
	if err != nil {
		return err
	}
	if p == nil {
		missing = append(missing, "Person not found")
	}
	st, err := r.Stores.FindByID(ctx, a.StoreID)
	if err != nil {
		return err
	}
	if st == nil {
		missing = append(missing, "Store not found")
	}
	if err := apperr.Missing(missing); err != nil {
		return err
	}

	taken, err := r.Attendants.ExistsWithUniqueField(ctx, attendantrepo.FieldPersonID, a.PersonID.String(), exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Person is already an attendant")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.AttendantInput) (*model.Attendant, error) {
	a, err := validation.Attendant(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.ID, a.CreatedAt, a.UpdatedAt = uuid.New(), now, now

	var out *model.Attendant
	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := refs(ctx, r, &a, nil); err != nil {
			return err
		}
		if err := r.Attendants.Insert(ctx, &a); err != nil {
			return err
		}
		out, err = r.Attendants.FindByID(ctx, a.ID)
		return err
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Attendant, error) {
	a, err := s.store.Repos().Attendants.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Attendant not found")
	}
	return a, nil
}

func (s *service) List(ctx context.Context, f attendantrepo.Filter) ([]model.Attendant, error) {
	out, err := s.store.Repos().Attendants.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.AttendantPatch) (*model.Attendant, error) {
	var out *model.Attendant
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Attendants.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Attendant not found")
		}
		if err := validation.PatchAttendant(a, in); err != nil {
			return err
		}
		if err := refs(ctx, r, a, &a.ID); err != nil {
			return err
		}
		a.UpdatedAt = time.Now().UTC()
		if err := r.Attendants.Update(ctx, a); err != nil {
			return err
		}
		out, err = r.Attendants.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Attendants.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Attendant not found")
		}
		rentals, err := r.Rentals.Count(ctx, rentalrepo.Filter{AttendantID: &id})
		if err != nil {
			return err
		}
		if rentals > 0 {
			return apperr.Conflict("Cannot delete attendant with rentals")
		}
		return r.Attendants.Delete(ctx, id)
	})
	return apperr.Translate(err)
}
