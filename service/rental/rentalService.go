package rentalsvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	paymentrepo "github.com/joaomarcosmb/cd-rental/repository/payment"
	rentalrepo "github.com/joaomarcosmb/cd-rental/repository/rental"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	// Open records a rental. An open rental (no return date) takes the item
	// from available to rented in the same transaction.
	Open(ctx context.Context, in validation.RentalInput) (*model.Rental, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context, f rentalrepo.Filter) ([]model.Rental, error)
	Active(ctx context.Context) ([]model.Rental, error)
	Returned(ctx context.Context) ([]model.Rental, error)
	Update(ctx context.Context, id uuid.UUID, in validation.RentalPatch) (*model.Rental, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Close stamps the return date and puts the item back on the shelf.
	Close(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	Payments(ctx context.Context, id uuid.UUID) ([]model.Payment, error)
}

type service struct {
	store repository.Store
	m     *metrics.Metrics
	now   func() time.Time
}

func New(store repository.Store, m *metrics.Metrics) Service {
	return &service{store: store, m: m, now: time.Now}
}

// refs resolves customer, attendant and item, locking the item row. The
// item is nil only when it is reported missing.
func refs(ctx context.Context, r repository.Repos, rt *model.Rental) (*model.InventoryItem, error) {
	var missing []string
	cu, err := r.Customers.FindByID(ctx, rt.CustomerID)
	if err != nil {
		return nil, err
	}
	if cu == nil {
		missing = append(missing, "Customer not found")
	}
	it, err := r.Items.FindByIDForUpdate(ctx, rt.ItemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		missing = append(missing, "Inventory item not found")
	}
	at, err := r.Attendants.FindByID(ctx, rt.AttendantID)
	if err != nil {
		return nil, err
	}
	if at == nil {
		missing = append(missing, "Attendant not found")
	}
	return it, apperr.Missing(missing)
}

func (s *service) Open(ctx context.Context, in validation.RentalInput) (*model.Rental, error) {
	now := s.now().UTC()
	rt, err := validation.Rental(in, now)
	if err != nil {
		return nil, err
	}
	rt.ID, rt.CreatedAt, rt.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		it, err := refs(ctx, r, &rt)
		if err != nil {
			return err
		}
		if err := it.CheckAvailable(); err != nil {
			return err
		}
		if !rt.IsReturned() {
			if err := it.Rent(); err != nil {
				return err
			}
			it.UpdatedAt = now
			if err := r.Items.Update(ctx, it); err != nil {
				return err
			}
		}
		return r.Rentals.Insert(ctx, &rt)
	})
	if err != nil {
		if apperr.Code(err) == apperr.ErrInvalidTransition {
			s.m.ItemTransition("rent", false)
		}
		return nil, apperr.Translate(err)
	}
	if !rt.IsReturned() {
		s.m.ItemTransition("rent", true)
		s.m.RentalOpened()
	}
	return &rt, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	rt, err := s.store.Repos().Rentals.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if rt == nil {
		return nil, apperr.NotFound("Rental not found")
	}
	return rt, nil
}

func (s *service) List(ctx context.Context, f rentalrepo.Filter) ([]model.Rental, error) {
	out, err := s.store.Repos().Rentals.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) Active(ctx context.Context) ([]model.Rental, error) {
	open := true
	return s.List(ctx, rentalrepo.Filter{Open: &open})
}

func (s *service) Returned(ctx context.Context) ([]model.Rental, error) {
	open := false
	return s.List(ctx, rentalrepo.Filter{Open: &open})
}

// Update keeps item statuses consistent with the patched rental: an item
// that stops being held by an open rental is released, and a newly
// referenced or newly held item must be available.
func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.RentalPatch) (*model.Rental, error) {
	now := s.now().UTC()
	var out *model.Rental
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		rt, err := r.Rentals.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rt == nil {
			return apperr.NotFound("Rental not found")
		}
		prev := *rt
		if err := validation.PatchRental(rt, in); err != nil {
			return err
		}

		it, err := refs(ctx, r, rt)
		if err != nil {
			return err
		}
		wasHeld := !prev.IsReturned()
		isHeld := !rt.IsReturned()
		sameItem := prev.ItemID == rt.ItemID

		if wasHeld && (!isHeld || !sameItem) {
			old := it
			if !sameItem {
				if old, err = r.Items.FindByIDForUpdate(ctx, prev.ItemID); err != nil {
					return err
				}
			}
			if old != nil {
				old.Status, old.UpdatedAt = model.ItemAvailable, now
				if err := r.Items.Update(ctx, old); err != nil {
					return err
				}
			}
		}
		if !sameItem {
			if err := it.CheckAvailable(); err != nil {
				return err
			}
		}
		if isHeld && (!wasHeld || !sameItem) {
			if err := it.Rent(); err != nil {
				return err
			}
			it.UpdatedAt = now
			if err := r.Items.Update(ctx, it); err != nil {
				return err
			}
		}

		rt.UpdatedAt = now
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}
		out = rt
		return nil
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		rt, err := r.Rentals.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rt == nil {
			return apperr.NotFound("Rental not found")
		}
		if !rt.IsReturned() {
			return apperr.Conflict("Cannot delete an open rental")
		}
		n, err := r.Payments.Count(ctx, paymentrepo.Filter{RentalID: &id})
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict("Cannot delete rental with payments")
		}
		return r.Rentals.Delete(ctx, id)
	})
	return apperr.Translate(err)
}

func (s *service) Close(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	now := s.now().UTC()
	var out *model.Rental
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		rt, err := r.Rentals.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rt == nil {
			return apperr.NotFound("Rental not found")
		}
		if err := rt.MarkReturned(now); err != nil {
			return err
		}
		rt.UpdatedAt = now
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}

		it, err := r.Items.FindByIDForUpdate(ctx, rt.ItemID)
		if err != nil {
			return err
		}
		if it != nil {
			it.Status, it.UpdatedAt = model.ItemAvailable, now
			if err := r.Items.Update(ctx, it); err != nil {
				return err
			}
		}
		out = rt
		return nil
	})
	if err != nil {
		if apperr.Code(err) == apperr.ErrInvalidTransition {
			s.m.ItemTransition("return", false)
		}
		return nil, apperr.Translate(err)
	}
	s.m.ItemTransition("return", true)
	s.m.RentalClosed()
	return out, nil
}

func (s *service) Payments(ctx context.Context, id uuid.UUID) ([]model.Payment, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	out, err := s.store.Repos().Payments.FindAll(ctx, paymentrepo.Filter{RentalID: &id})
	return out, apperr.Translate(err)
}
