package inventorysvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	inventoryrepo "github.com/joaomarcosmb/cd-rental/repository/inventory"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.InventoryItemInput) (*model.InventoryItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error)
	List(ctx context.Context, f inventoryrepo.Filter) ([]model.InventoryItem, error)
	// ListByStatus validates raw against the item status set first.
	ListByStatus(ctx context.Context, raw string) ([]model.InventoryItem, error)
	// Available lists rentable items, optionally narrowed by album and store.
	Available(ctx context.Context, albumID, storeID *uuid.UUID) ([]model.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, in validation.InventoryItemPatch) (*model.InventoryItem, error)
	// UpdateStatus sets any status from the closed set, bypassing the
	// rent/return guards.
	UpdateStatus(ctx context.Context, id uuid.UUID, raw string) (*model.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Rent(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	Return(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
}

type service struct {
	store repository.Store
	m     *metrics.Metrics
}

func New(store repository.Store, m *metrics.Metrics) Service {
	return &service{store: store, m: m}
}

func refs(ctx context.Context, r repository.Repos, it *model.InventoryItem) error {
	var missing []string
	a, err := r.Albums.FindByID(ctx, it.AlbumID)
	if err != nil {
		return err
	}
	if a == nil {
		missing = append(missing, "Album not found")
	}
	st, err := r.Stores.FindByID(ctx, it.StoreID)
	if err != nil {
		return err
	}
	if st == nil {
		missing = append(missing, "Store not found")
	}
	return apperr.Missing(missing)
}

func unique(ctx context.Context, r inventoryrepo.Repo, it *model.InventoryItem, exclude *uuid.UUID) error {
	taken, err := r.ExistsWithUniqueField(ctx, inventoryrepo.FieldBarcode, it.Barcode, exclude)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Barcode already registered")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.InventoryItemInput) (*model.InventoryItem, error) {
	it, err := validation.InventoryItem(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	it.ID, it.CreatedAt, it.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := refs(ctx, r, &it); err != nil {
			return err
		}
		if err := unique(ctx, r.Items, &it, nil); err != nil {
			return err
		}
		return r.Items.Insert(ctx, &it)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &it, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	it, err := s.store.Repos().Items.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if it == nil {
		return nil, apperr.NotFound("Inventory item not found")
	}
	return it, nil
}

func (s *service) GetByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error) {
	code, err := validation.Barcode(barcode)
	if err != nil {
		return nil, validation.Aggregate(err)
	}
	it, err := s.store.Repos().Items.FindByBarcode(ctx, code)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if it == nil {
		return nil, apperr.NotFound("Inventory item not found")
	}
	return it, nil
}

func (s *service) List(ctx context.Context, f inventoryrepo.Filter) ([]model.InventoryItem, error) {
	out, err := s.store.Repos().Items.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) ListByStatus(ctx context.Context, raw string) ([]model.InventoryItem, error) {
	status, err := validation.ItemStatus(raw)
	if err != nil {
		return nil, validation.Aggregate(err)
	}
	return s.List(ctx, inventoryrepo.Filter{Status: &status})
}

func (s *service) Available(ctx context.Context, albumID, storeID *uuid.UUID) ([]model.InventoryItem, error) {
	status := model.ItemAvailable
	return s.List(ctx, inventoryrepo.Filter{AlbumID: albumID, StoreID: storeID, Status: &status})
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.InventoryItemPatch) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		it, err := r.Items.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if it == nil {
			return apperr.NotFound("Inventory item not found")
		}
		if err := validation.PatchInventoryItem(it, in); err != nil {
			return err
		}
		if in.AlbumID != nil || in.StoreID != nil {
			if err := refs(ctx, r, it); err != nil {
				return err
			}
		}
		if err := unique(ctx, r.Items, it, &it.ID); err != nil {
			return err
		}
		it.UpdatedAt = time.Now().UTC()
		if err := r.Items.Update(ctx, it); err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, raw string) (*model.InventoryItem, error) {
	return s.Update(ctx, id, validation.InventoryItemPatch{Status: &raw})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		it, err := r.Items.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if it == nil {
			return apperr.NotFound("Inventory item not found")
		}
		open := true
		active, err := r.Rentals.Count(ctx, rentalrepo.Filter{ItemID: &id, Open: &open})
		if err != nil {
			return err
		}
		if active > 0 {
			return apperr.Conflict("Cannot delete inventory item with active rentals")
		}
		history, err := r.Rentals.Count(ctx, rentalrepo.Filter{ItemID: &id})
		if err != nil {
			return err
		}
		if history > 0 {
			return apperr.Conflict("Cannot delete inventory item with rental history")
		}
		return r.Items.Delete(ctx, id)
	})
	return apperr.Translate(err)
}

func (s *service) Rent(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return s.transition(ctx, id, "rent", (*model.InventoryItem).Rent)
}

func (s *service) Return(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return s.transition(ctx, id, "return", (*model.InventoryItem).Return)
}

// transition re-reads the item under lock and applies a guarded move.
func (s *service) transition(ctx context.Context, id uuid.UUID, op string, move func(*model.InventoryItem) error) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		it, err := r.Items.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if it == nil {
			return apperr.NotFound("Inventory item not found")
		}
		if err := move(it); err != nil {
			return err
		}
		it.UpdatedAt = time.Now().UTC()
		if err := r.Items.Update(ctx, it); err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		if apperr.Code(err) == apperr.ErrInvalidTransition {
			s.m.ItemTransition(op, false)
		}
		return nil, apperr.Translate(err)
	}
	s.m.ItemTransition(op, true)
	return out, nil
}
