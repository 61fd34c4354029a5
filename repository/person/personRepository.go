package personrepo

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

const (
	FieldCPF   UniqueField = "cpf"
	FieldEmail UniqueField = "email"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
	FindAll(ctx context.Context) ([]model.Person, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, p *model.Person) error
	Update(ctx context.Context, p *model.Person) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, cpf, name, phone, email, created_at, updated_at`

// scanInto lists the destinations for columns.
func scanInto(p *model.Person) []any {
	return []any{&p.ID, &p.CPF, &p.Name, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt}
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	p := &model.Person{}
	err := r.q.QueryRow(ctx, `SELECT `+columns+` FROM persons WHERE id = $1`, id).Scan(scanInto(p)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("person by id: %w", err)
	}
	return p, nil
}

func (r *repo) FindAll(ctx context.Context) ([]model.Person, error) {
	rows, err := r.q.Query(ctx, `SELECT `+columns+` FROM persons ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	out := []model.Person{}
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(scanInto(&p)...); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	switch field {
	case FieldCPF, FieldEmail:
	default:
		return false, fmt.Errorf("persons: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "persons", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, p *model.Person) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO persons (id, cpf, name, phone, email, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.CPF, p.Name, p.Phone, p.Email, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, p *model.Person) error {
	_, err := r.q.Exec(ctx, `
		UPDATE persons
		SET cpf = $2, name = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.CPF, p.Name, p.Phone, p.Email, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "persons", id)
}
