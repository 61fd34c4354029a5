package customerrepo

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

// FieldPersonID: a person holds the customer role at most once.
const FieldPersonID UniqueField = "person_id"

type Filter struct {
	PersonID *uuid.UUID
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.PersonID != nil {
		w.Eq("c.person_id", *f.PersonID)
	}
	return w
}

// Repo reads customers joined with their person.
type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindAll(ctx context.Context, f Filter) ([]model.Customer, error)
	Count(ctx context.Context, f Filter) (int, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const selectJoined = `
	SELECT c.id, c.person_id, c.created_at, c.updated_at,
		p.id, p.cpf, p.name, p.phone, p.email, p.created_at, p.updated_at
	FROM customers c
	JOIN persons p ON p.id = c.person_id`

func scan(row pgx.Row) (*model.Customer, error) {
	c := &model.Customer{Person: &model.Person{}}
	p := c.Person
	err := row.Scan(&c.ID, &c.PersonID, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.CPF, &p.Name, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := scan(r.q.QueryRow(ctx, selectJoined+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("customer by id: %w", err)
	}
	return c, nil
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Customer, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, selectJoined+w.String()+` ORDER BY c.created_at, c.id`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int, error) {
	return database.Count(ctx, r.q, "customers c", f.where())
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	if field != FieldPersonID {
		return false, fmt.Errorf("customers: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "customers", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, c *model.Customer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (id, person_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4)`,
		c.ID, c.PersonID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, c *model.Customer) error {
	_, err := r.q.Exec(ctx, `UPDATE customers SET person_id = $2, updated_at = $3 WHERE id = $1`,
		c.ID, c.PersonID, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "customers", id)
}
