package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

type Filter struct {
	RentalID *uuid.UUID
	Status   *model.PaymentStatus
	Method   *model.PaymentMethod
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.RentalID != nil {
		w.Eq("rental_id", *f.RentalID)
	}
	if f.Status != nil {
		w.Eq("status", string(*f.Status))
	}
	if f.Method != nil {
		w.Eq("payment_method", string(*f.Method))
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	FindAll(ctx context.Context, f Filter) ([]model.Payment, error)
	Count(ctx context.Context, f Filter) (int, error)
	Insert(ctx context.Context, p *model.Payment) error
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, rental_id, amount, payment_method, status, payment_date, created_at, updated_at`

func scan(row pgx.Row) (*model.Payment, error) {
	p := &model.Payment{}
	var method, status string
	err := row.Scan(&p.ID, &p.RentalID, &p.Amount, &method, &status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Method, p.Status = model.PaymentMethod(method), model.PaymentStatus(status)
	return p, nil
}

func (r *repo) one(ctx context.Context, sql string, id uuid.UUID) (*model.Payment, error) {
	p, err := scan(r.q.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("payment by id: %w", err)
	}
	return p, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return r.one(ctx, `SELECT `+columns+` FROM payments WHERE id = $1`, id)
}

func (r *repo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return r.one(ctx, `SELECT `+columns+` FROM payments WHERE id = $1 FOR UPDATE`, id)
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Payment, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, `
		SELECT `+columns+`
		FROM payments`+w.String()+`
		ORDER BY payment_date DESC, id DESC`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := []model.Payment{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int, error) {
	return database.Count(ctx, r.q, "payments", f.where())
}

func (r *repo) Insert(ctx context.Context, p *model.Payment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO payments (`+columns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.RentalID, p.Amount, string(p.Method), string(p.Status), p.PaymentDate,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, p *model.Payment) error {
	_, err := r.q.Exec(ctx, `
		UPDATE payments
		SET rental_id = $2, amount = $3, payment_method = $4, status = $5,
			payment_date = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.RentalID, p.Amount, string(p.Method), string(p.Status), p.PaymentDate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "payments", id)
}
