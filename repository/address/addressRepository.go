package addressrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

type UniqueField string

// FieldStoreID: a store has at most one address.
const FieldStoreID UniqueField = "store_id"

type Filter struct {
	StoreID    *uuid.UUID
	CustomerID *uuid.UUID
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.StoreID != nil {
		w.Eq("store_id", *f.StoreID)
	}
	if f.CustomerID != nil {
		w.Eq("customer_id", *f.CustomerID)
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error)
	FindAll(ctx context.Context, f Filter) ([]model.Address, error)
	Count(ctx context.Context, f Filter) (int, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, a *model.Address) error
	Update(ctx context.Context, a *model.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, street, number, neighborhood, city, state, zip_code, store_id, customer_id, created_at, updated_at`

func scan(row pgx.Row) (*model.Address, error) {
	a := &model.Address{}
	err := row.Scan(&a.ID, &a.Street, &a.Number, &a.Neighborhood, &a.City, &a.State,
		&a.ZipCode, &a.StoreID, &a.CustomerID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Address, error) {
	a, err := scan(r.q.QueryRow(ctx, `SELECT `+columns+` FROM addresses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("address by id: %w", err)
	}
	return a, nil
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Address, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, `SELECT `+columns+` FROM addresses`+w.String()+` ORDER BY created_at, id`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	out := []model.Address{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int, error) {
	return database.Count(ctx, r.q, "addresses", f.where())
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	if field != FieldStoreID {
		return false, fmt.Errorf("addresses: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "addresses", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, a *model.Address) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO addresses (`+columns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode,
		a.StoreID, a.CustomerID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, a *model.Address) error {
	_, err := r.q.Exec(ctx, `
		UPDATE addresses
		SET street = $2, number = $3, neighborhood = $4, city = $5, state = $6,
			zip_code = $7, store_id = $8, customer_id = $9, updated_at = $10
		WHERE id = $1`,
		a.ID, a.Street, a.Number, a.Neighborhood, a.City, a.State, a.ZipCode,
		a.StoreID, a.CustomerID, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "addresses", id)
}
