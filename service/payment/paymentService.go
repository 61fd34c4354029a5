package paymentsvc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/repository"
	paymentrepo "github.com/joaomarcosmb/cd-rental/repository/payment"
	"github.com/joaomarcosmb/cd-rental/util/apperr"
	"github.com/joaomarcosmb/cd-rental/util/metrics"
	"github.com/joaomarcosmb/cd-rental/validation"
)

type Service interface {
	Create(ctx context.Context, in validation.PaymentInput) (*model.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context, f paymentrepo.Filter) ([]model.Payment, error)
	ListByStatus(ctx context.Context, raw string) ([]model.Payment, error)
	ListByMethod(ctx context.Context, raw string) ([]model.Payment, error)
	Update(ctx context.Context, id uuid.UUID, in validation.PaymentPatch) (*model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Complete refuses a payment that is already completed.
	Complete(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	// Fail marks the payment failed from any status.
	Fail(ctx context.Context, id uuid.UUID) (*model.Payment, error)
}

type service struct {
	store repository.Store
	m     *metrics.Metrics
	now   func() time.Time
}

func New(store repository.Store, m *metrics.Metrics) Service {
	return &service{store: store, m: m, now: time.Now}
}

func rentalExists(ctx context.Context, r repository.Repos, id uuid.UUID) error {
	rt, err := r.Rentals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rt == nil {
		return apperr.NotFound("Rental not found")
	}
	return nil
}

func (s *service) Create(ctx context.Context, in validation.PaymentInput) (*model.Payment, error) {
	now := s.now().UTC()
	p, err := validation.Payment(in, now)
	if err != nil {
		return nil, err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = uuid.New(), now, now

	err = s.store.InTx(ctx, func(r repository.Repos) error {
		if err := rentalExists(ctx, r, p.RentalID); err != nil {
			return err
		}
		return r.Payments.Insert(ctx, &p)
	})
	if err != nil {
		return nil, apperr.Translate(err)
	}
	return &p, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	p, err := s.store.Repos().Payments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	if p == nil {
		return nil, apperr.NotFound("Payment not found")
	}
	return p, nil
}

func (s *service) List(ctx context.Context, f paymentrepo.Filter) ([]model.Payment, error) {
	out, err := s.store.Repos().Payments.FindAll(ctx, f)
	return out, apperr.Translate(err)
}

func (s *service) ListByStatus(ctx context.Context, raw string) ([]model.Payment, error) {
	status, err := validation.PaymentStatus(raw)
	if err != nil {
		return nil, validation.Aggregate(err)
	}
	return s.List(ctx, paymentrepo.Filter{Status: &status})
}

func (s *service) ListByMethod(ctx context.Context, raw string) ([]model.Payment, error) {
	method, err := validation.PaymentMethod(raw)
	if err != nil {
		return nil, validation.Aggregate(err)
	}
	return s.List(ctx, paymentrepo.Filter{Method: &method})
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in validation.PaymentPatch) (*model.Payment, error) {
	var out *model.Payment
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		p, err := r.Payments.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("Payment not found")
		}
		if err := validation.PatchPayment(p, in); err != nil {
			return err
		}
		if in.RentalID != nil {
			if err := rentalExists(ctx, r, p.RentalID); err != nil {
				return err
			}
		}
		p.UpdatedAt = s.now().UTC()
		if err := r.Payments.Update(ctx, p); err != nil {
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
		p, err := r.Payments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("Payment not found")
		}
		return r.Payments.Delete(ctx, id)
	})
	return apperr.Translate(err)
}

func (s *service) Complete(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return s.transition(ctx, id, "complete", (*model.Payment).Complete)
}

func (s *service) Fail(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return s.transition(ctx, id, "fail", func(p *model.Payment) error {
		p.Fail()
		return nil
	})
}

func (s *service) transition(ctx context.Context, id uuid.UUID, op string, move func(*model.Payment) error) (*model.Payment, error) {
	var out *model.Payment
	err := s.store.InTx(ctx, func(r repository.Repos) error {
		p, err := r.Payments.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return apperr.NotFound("Payment not found")
		}
		if err := move(p); err != nil {
			return err
		}
		p.UpdatedAt = s.now().UTC()
		if err := r.Payments.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		if apperr.Code(err) == apperr.ErrInvalidTransition {
			s.m.PaymentTransition(op, false)
		}
		return nil, apperr.Translate(err)
	}
	s.m.PaymentTransition(op, true)
	return out, nil
}
