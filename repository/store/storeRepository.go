package storerepo

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

const FieldCNPJ UniqueField = "cnpj"

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
	FindAll(ctx context.Context) ([]model.Store, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, s *model.Store) error
	Update(ctx context.Context, s *model.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, cnpj, trade_name, created_at, updated_at`

func scan(row pgx.Row) (*model.Store, error) {
	s := &model.Store{}
	if err := row.Scan(&s.ID, &s.CNPJ, &s.TradeName, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	s, err := scan(r.q.QueryRow(ctx, `SELECT `+columns+` FROM stores WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store by id: %w", err)
	}
	return s, nil
}

func (r *repo) FindAll(ctx context.Context) ([]model.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT `+columns+` FROM stores ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	out := []model.Store{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	if field != FieldCNPJ {
		return false, fmt.Errorf("stores: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "stores", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, s *model.Store) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stores (id, cnpj, trade_name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.CNPJ, s.TradeName, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, s *model.Store) error {
	_, err := r.q.Exec(ctx, `
		UPDATE stores SET cnpj = $2, trade_name = $3, updated_at = $4
		WHERE id = $1`,
		s.ID, s.CNPJ, s.TradeName, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "stores", id)
}
