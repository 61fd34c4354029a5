package customersvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	customerrepo "github.com/joaomarcosmb/cd-rental/repository/customer"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.CustomerInput) (*model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, in validation.CustomerPatch) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Rentals is the customer's rental history, newest first.
	Rentals(ctx context.Context, id uuid.UUID) ([]model.Rental, error)
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

// assign checks that the person exists and holds no other customer role.
func assign(ctx context.Context, r repository.Repos, cu *model.Customer, exclude *uuid.UUID) error {
	p, err := r.Persons.FindByID(ctx, cu.PersonID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("Person not found")
	}
	taken, err := r.Customers.ExistsWithUniqueField(ctx, customerrepo.FieldPersonID, cu.PersonID.String(), exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Person is already a customer")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.CustomerInput) (*model.Customer, error) {
	cu, err := validation.Customer(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	cu.ID, cu.CreatedAt, cu.UpdatedAt = uuid.New(), now, now

	var out *model.Customer
	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := assign(ctx, r, &cu, nil); err != nil {
			return err
		}
		if err := r.Customers.Insert(ctx, &cu); err != nil {
			return err
		}
		out, err = r.Customers.FindByID(ctx, cu.ID)
		return err
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	cu, err := s.store.Repos().Customers.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if cu == nil {
		return nil, apperr.NotFound("Customer not found")
	}
	return cu, nil
}

func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	out, err := s.store.Repos().Customers.FindAll(ctx, customerrepo.Filter{})
	return out, apperr.Translate(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.CustomerPatch) (*model.Customer, error) {
	var out *model.Customer
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		cu, err := r.Customers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if cu == nil {
			return apperr.NotFound("Customer not found")
		}
		if err := validation.PatchCustomer(cu, in); err != nil {
			return err
		}
		if in.PersonID != nil {
			if err := assign(ctx, r, cu, &cu.ID); err != nil {
				return err
			}
		}
		cu.UpdatedAt = time.Now().UTC()
		if err := r.Customers.Update(ctx, cu); err != nil {
			return err
		}
		out, err = r.Customers.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		cu, err := r.Customers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if cu == nil {
			return apperr.NotFound("Customer not found")
		}
		rentals, err := r.Rentals.Count(ctx, rentalrepo.Filter{CustomerID: &id})
		if err != nil {
			return err
		}
		if rentals > 0 {
			return apperr.Conflict("Cannot delete customer with rentals")
		}
		addresses, err := r.Addresses.Count(ctx, addressrepo.Filter{CustomerID: &id})
		if err != nil {
			return err
		}
		if addresses > 0 {
			return apperr.Conflict("Cannot delete customer with addresses")
		}
		return r.Customers.Delete(ctx, id)
	})
	return apperr.Translate(err)
}

func (s *service) Rentals(ctx context.Context, id uuid.UUID) ([]model.Rental, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	out, err := s.store.Repos().Rentals.FindAll(ctx, rentalrepo.Filter{CustomerID: &id})
	return out, apperr.Translate(err)
}
