package addresssvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.AddressInput) (*model.Address, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Address, error)
	List(ctx context.Context, f addressrepo.Filter) ([]model.Address, error)
	Update(ctx context.Context, id uuid.UUID, in validation.AddressPatch) (*model.Address, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

// refs checks the store and customer an address points at, reporting both
// when both are missing.
func refs(ctx context.Context, r repository.Repos, a *model.Address) error {
	var missing []string
	st, err := r.Stores.FindByID(ctx, a.StoreID)
	if err != nil {
		return err
	}
	if st == nil {
		missing = append(missing, "Store not found")
	}
	cu, err := r.Customers.FindByID(ctx, a.CustomerID)
	if err != nil {
		return err
	}
	if cu == nil {
		missing = append(missing, "Customer not found")
	}
	return apperr.Missing(missing)
}

func unique(ctx context.Context, r addressrepo.Repo, a *model.Address, exclude *uuid.UUID) error {
	taken, err := r.ExistsWithUniqueField(ctx, addressrepo.FieldStoreID, a.StoreID.String(), exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Store already has an address")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.AddressInput) (*model.Address, error) {
	a, err := validation.Address(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.ID, a.CreatedAt, a.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := refs(ctx, r, &a); err != nil {
			return err
		}
		if err := unique(ctx, r.Addresses, &a, nil); err != nil {
			return err
		}
		return r.Addresses.Insert(ctx, &a)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	a, err := s.store.Repos().Addresses.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if a == nil {
		return nil, apperr.NotFound("Address not found")
	}
	return a, nil
}

func (s *service) List(ctx context.Context, f addressrepo.Filter) ([]model.Address, error) {
	out, err := s.store.Repos().Addresses.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.AddressPatch) (*model.Address, error) {
	var out *model.Address
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Addresses.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Address not found")
		}
		if err := validation.PatchAddress(a, in); err != nil {
			return err
		}
		if in.StoreID != nil || in.CustomerID != nil {
			if err := refs(ctx, r, a); err != nil {
				return err
			}
			if err := unique(ctx, r.Addresses, a, &a.ID); err != nil {
				return err
			}
		}
		a.UpdatedAt = time.Now().UTC()
		if err := r.Addresses.Update(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		a, err := r.Addresses.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound("Address not found")
		}
		return r.Addresses.Delete(ctx, id)
	})
	return apperr.Translate(err)
}
