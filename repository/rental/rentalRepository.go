package rentalrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

// Filter narrows rentals; Open selects open (true) or returned (false) ones.
type Filter struct {
	CustomerID  *uuid.UUID
	ItemID      *uuid.UUID
	AttendantID *uuid.UUID
	Open        *bool
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.CustomerID != nil {
		w.Eq("customer_id", *f.CustomerID)
	}
	if f.ItemID != nil {
		w.Eq("item_id", *f.ItemID)
	}
	if f.AttendantID != nil {
		w.Eq("attendant_id", *f.AttendantID)
	}
	if f.Open != nil {
		if *f.Open {
			w.Raw("return_date IS NULL")
		} else {
			w.Raw("return_date IS NOT NULL")
		}
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	FindAll(ctx context.Context, f Filter) ([]model.Rental, error)
	Count(ctx context.Context, f Filter) (int, error)
	Insert(ctx context.Context, r *model.Rental) error
	Update(ctx context.Context, r *model.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, customer_id, item_id, attendant_id, rental_date, return_date, created_at, updated_at`

func scan(row pgx.Row) (*model.Rental, error) {
	r := &model.Rental{}
	err := row.Scan(&r.ID, &r.CustomerID, &r.ItemID, &r.AttendantID,
		&r.RentalDate, &r.ReturnDate, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repo) one(ctx context.Context, sql string, id uuid.UUID) (*model.Rental, error) {
	out, err := scan(r.q.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rental by id: %w", err)
	}
	return out, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return r.one(ctx, `SELECT `+columns+` FROM rentals WHERE id = $1`, id)
}

func (r *repo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return r.one(ctx, `SELECT `+columns+` FROM rentals WHERE id = $1 FOR UPDATE`, id)
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Rental, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, `
		SELECT `+columns+`
		FROM rentals`+w.String()+`
		ORDER BY rental_date DESC, id DESC`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	out := []model.Rental{}
	for rows.Next() {
		rt, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int, error) {
	return database.Count(ctx, r.q, "rentals", f.where())
}

func (r *repo) Insert(ctx context.Context, rt *model.Rental) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO rentals (`+columns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rt.ID, rt.CustomerID, rt.ItemID, rt.AttendantID, rt.RentalDate, rt.ReturnDate,
		rt.CreatedAt, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rental: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, rt *model.Rental) error {
	_, err := r.q.Exec(ctx, `
		UPDATE rentals
		SET customer_id = $2, item_id = $3, attendant_id = $4,
			rental_date = $5, return_date = $6, updated_at = $7
		WHERE id = $1`,
		rt.ID, rt.CustomerID, rt.ItemID, rt.AttendantID, rt.RentalDate, rt.ReturnDate, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rental: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "rentals", id)
}
