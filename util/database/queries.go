package database

import (
	"context"
	"fmt"
)

// Exists reports whether table has a row with col = value, ignoring the row
// whose id is excludeID (nil to ignore none). table and col must be trusted.
func Exists(ctx context.Context, q Querier, table, col string, value, excludeID any) (bool, error) {
	sql := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1
			AND ($2::uuid IS NULL OR id <> $2::uuid))`, table, col)
	var ok bool
	if err := q.QueryRow(ctx, sql, value, excludeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists %s.%s: %w", table, col, err)
	}
	return ok, nil
}

// Count returns the number of rows of table matching w.
func Count(ctx context.Context, q Querier, table string, w *Where) (int, error) {
	var n int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+w.String(), w.Args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func DeleteByID(ctx context.Context, q Querier, table string, id any) error {
	if _, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
