package database

import (
	"fmt"
	"strings"
)

// Where accumulates AND-ed predicates with positional arguments.
type Where struct {
	clauses []string
	Args    []any
}

func (w *Where) arg(v any) string {
	w.Args = append(w.Args, v)
	return fmt.Sprintf("$%d", len(w.Args))
}

// Eq adds col = value. col must be a trusted identifier.
func (w *Where) Eq(col string, v any) {
	w.clauses = append(w.clauses, col+" = "+w.arg(v))
}

// Contains adds a case-insensitive substring match.
func (w *Where) Contains(col, substr string) {
	w.clauses = append(w.clauses, col+" ILIKE '%' || "+w.arg(escapeLike(substr))+" || '%'")
}

func (w *Where) Raw(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *Where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
