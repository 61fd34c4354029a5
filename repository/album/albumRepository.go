package albumrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/joaomarcosmb/cd-rental/model"
	"github.com/joaomarcosmb/cd-rental/util/database"
)

// Filter matches case-insensitive substrings; empty fields are ignored.
type Filter struct {
	Title  string
	Artist string
	Genre  string
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.Title != "" {
		w.Contains("title", f.Title)
	}
	if f.Artist != "" {
		w.Contains("artist", f.Artist)
	}
	if f.Genre != "" {
		w.Contains("genre", f.Genre)
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Album, error)
	FindAll(ctx context.Context, f Filter) ([]model.Album, error)
	Insert(ctx context.Context, a *model.Album) error
	Update(ctx context.Context, a *model.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, title, artist, genre, rental_price, created_at, updated_at`

func scan(row pgx.Row) (*model.Album, error) {
	a := &model.Album{}
	if err := row.Scan(&a.ID, &a.Title, &a.Artist, &a.Genre, &a.RentalPrice, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.Album, error) {
	a, err := scan(r.q.QueryRow(ctx, `SELECT `+columns+` FROM albums WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("album by id: %w", err)
	}
	return a, nil
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.Album, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, `SELECT `+columns+` FROM albums`+w.String()+` ORDER BY created_at, id`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	out := []model.Album{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *repo) Insert(ctx context.Context, a *model.Album) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO albums (id, title, artist, genre, rental_price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.Title, a.Artist, a.Genre, a.RentalPrice, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, a *model.Album) error {
	_, err := r.q.Exec(ctx, `
		UPDATE albums
		SET title = $2, artist = $3, genre = $4, rental_price = $5, updated_at = $6
		WHERE id = $1`,
		a.ID, a.Title, a.Artist, a.Genre, a.RentalPrice, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "albums", id)
}
