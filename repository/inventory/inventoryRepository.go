package inventoryrepo

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

const FieldBarcode UniqueField = "barcode"

type Filter struct {
	AlbumID *uuid.UUID
	StoreID *uuid.UUID
	Status  *model.ItemStatus
}

func (f Filter) where() *database.Where {
	w := &database.Where{}
	if f.AlbumID != nil {
		w.Eq("album_id", *f.AlbumID)
	}
	if f.StoreID != nil {
		w.Eq("store_id", *f.StoreID)
	}
	if f.Status != nil {
		w.Eq("status", string(*f.Status))
	}
	return w
}

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error)
	FindAll(ctx context.Context, f Filter) ([]model.InventoryItem, error)
	Count(ctx context.Context, f Filter) (int, error)
	ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error)
	Insert(ctx context.Context, it *model.InventoryItem) error
	Update(ctx context.Context, it *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ q database.Querier }

func New(q database.Querier) Repo { return &repo{q: q} }

const columns = `id, barcode, album_id, store_id, status, created_at, updated_at`

func scan(row pgx.Row) (*model.InventoryItem, error) {
	it := &model.InventoryItem{}
	var status string
	if err := row.Scan(&it.ID, &it.Barcode, &it.AlbumID, &it.StoreID, &status, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	it.Status = model.ItemStatus(status)
	return it, nil
}

func (r *repo) one(ctx context.Context, sql string, arg any) (*model.InventoryItem, error) {
	it, err := scan(r.q.QueryRow(ctx, sql, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("inventory item: %w", err)
	}
	return it, nil
}

func (r *repo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return r.one(ctx, `SELECT `+columns+` FROM inventory_items WHERE id = $1`, id)
}

func (r *repo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	return r.one(ctx, `SELECT `+columns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *repo) FindByBarcode(ctx context.Context, barcode string) (*model.InventoryItem, error) {
	return r.one(ctx, `SELECT `+columns+` FROM inventory_items WHERE barcode = $1`, barcode)
}

func (r *repo) FindAll(ctx context.Context, f Filter) ([]model.InventoryItem, error) {
	w := f.where()
	rows, err := r.q.Query(ctx, `SELECT `+columns+` FROM inventory_items`+w.String()+` ORDER BY created_at, id`, w.Args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	out := []model.InventoryItem{}
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

func (r *repo) Count(ctx context.Context, f Filter) (int, error) {
	return database.Count(ctx, r.q, "inventory_items", f.where())
}

func (r *repo) ExistsWithUniqueField(ctx context.Context, field UniqueField, value string, excludeID *uuid.UUID) (bool, error) {
	if field != FieldBarcode {
		return false, fmt.Errorf("inventory_items: %q is not a unique field", field)
	}
	return database.Exists(ctx, r.q, "inventory_items", string(field), value, excludeID)
}

func (r *repo) Insert(ctx context.Context, it *model.InventoryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_items (id, barcode, album_id, store_id, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		it.ID, it.Barcode, it.AlbumID, it.StoreID, string(it.Status), it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, it *model.InventoryItem) error {
	_, err := r.q.Exec(ctx, `
		UPDATE inventory_items
		SET barcode = $2, album_id = $3, store_id = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		it.ID, it.Barcode, it.AlbumID, it.StoreID, string(it.Status), it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	return database.DeleteByID(ctx, r.q, "inventory_items", id)
}
