package attendantrepo

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

const FieldPersonID UniqueField = "person_id"

type Filter struct {
	PersonID *uuid.UUID
	StoreID  *uuid.UUID
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.PersonID != nil {
		w.Eq("a.person_id", *f.PersonID)
	}
	if f.StoreID != nil {
		w.Eq("a.store_id", *f.StoreID)
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attendant, error)
	FindAll(ctx context.Context, f Filter) ([]model.Attendant, error)
	Count(ctx context.Context, f Filter) (int, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, a *model.Attendant) error
	Update(ctx context.Context, a *model.Attendant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const selectJoined = `
	SELECT a.id, a.person_id, a.store_id, a.created_at, a.updated_at,
		p.id, p.cpf, p.name, p.phone, p.email, p.created_at, p.updated_at
	FROM attendants a
	JOIN persons p ON p.id = a.person_id`

func scan(row pgx.Row) (*model.Attendant, error) {
	a := &model.Attendant{Person: &model.Person{}}
	p := a.Person
	err := row.Scan(&a.ID, &a.PersonID, &a.StoreID, &a.CreatedAt, &a.UpdatedAt,
		&p.ID, &p.CPF, &p.Name, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Attendant, error) {
	a, err := scan(r.q.QueryRow(ctx, selectJoined+` WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("attendant by id: %w", err)
	}
	return a, nil
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Attendant, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, selectJoined+w.String()+` ORDER BY a.created_at, a.id`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list attendants: %w", err)
	}
	defer rows.Close()

	out := []model.Attendant{}
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
	return database.Count(ctx, r.q, "attendants a", f.where())
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	if field != FieldPersonID {
		return false, fmt.Errorf("attendants: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "attendants", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, a *model.Attendant) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO attendants (id, person_id, store_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.PersonID, a.StoreID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attendant: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, a *model.Attendant) error {
	_, err := r.q.Exec(ctx, `
		UPDATE attendants SET person_id = $2, store_id = $3, updated_at = $4
		WHERE id = $1`,
		a.ID, a.PersonID, a.StoreID, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update attendant: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "attendants", id)
}
