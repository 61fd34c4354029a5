package storesvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	addressrepo "github.com/joaomarcosmb/cd-rental/repository/address"
	attendantrepo "github.com/joaomarcosmb/cd-rental/repository/attendant"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	storerepo "github.com/joaomarcosmb/cd-rental/repository/store"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.StoreInput) (*model.Store, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Store, error)
	List(ctx context.Context) ([]model.Store, error)
	Update(ctx context.Context, id uuid.UUID, in validation.StorePatch) (*model.Store, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Attendants lists the staff working at a store.
	Attendants(ctx context.Context, id uuid.UUID) ([]model.Attendant, error)
}

type service struct{ store repository.Store }

func New(store repository.Store) Service { return &service{store: store} }

func unique(ctx context.Context, r storerepo.Repo, st *model.Store, exclude *uuid.UUID) error {
	taken, err := r.ExistsWithUniqueField(ctx, storerepo.FieldCNPJ, st.CNPJ, exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("CNPJ already registered")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.StoreInput) (*model.Store, error) {
	st, err := validation.Store(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	st.ID, st.CreatedAt, st.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := unique(ctx, r.Stores, &st, nil); err != nil {
			return err
		}
		return r.Stores.Insert(ctx, &st)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &st, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	st, err := s.store.Repos().Stores.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if st == nil {
		return nil, apperr.NotFound("Store not found")
	}
	return st, nil
}

func (s *service) List(ctx context.Context) ([]model.Store, error) {
	out, err := s.store.Repos().Stores.FindAll(ctx)
	return out, apperr.Translate(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.StorePatch) (*model.Store, error) {
	var out *model.Store
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		st, err := r.Stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if st == nil {
			return apperr.NotFound("Store not found")
		}
		if err := validation.PatchStore(st, in); err != nil {
			return err
		}
		if err := unique(ctx, r.Stores, st, &st.ID); err != nil {
			return err
		}
		st.UpdatedAt = time.Now().UTC()
		if err := r.Stores.Update(ctx, st); err != nil {
			return err
		}
		out = st
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		st, err := r.Stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if st == nil {
			return apperr.NotFound("Store not found")
		}

		attendants, err := r.Attendants.Count(ctx, attendantrepo.Filter{StoreID: &id})
		if err != nil {
			return err
		}
		if attendants > 0 {
			return apperr.Conflict("Cannot delete store with attendants")
		}
		items, err := r.Items.Count(ctx, inventoryrepo.Filter{StoreID: &id})
		if err != nil {
			return err
		}
		if items > 0 {
			return apperr.Conflict("Cannot delete store with inventory items")
		}
		addresses, err := r.Addresses.Count(ctx, addressrepo.Filter{StoreID: &id})
		if err != nil {
			return err
		}
		if addresses > 0 {
			return apperr.Conflict("Cannot delete store with an address")
		}
		return r.Stores.Delete(ctx, id)
	})
	return apperr.Translate(err)
}

func (s *service) Attendants(ctx context.Context, id uuid.UUID) ([]model.Attendant, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	out, err := s.store.Repos().Attendants.FindAll(ctx, attendantrepo.Filter{StoreID: &id})
	return out, apperr.Translate(err)
}
