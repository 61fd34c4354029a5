package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhere(t *testing.T) {
	var w Where
	require.Equal(t, "", w.String())

	w.Eq("store_id", "s1")
	w.Contains("artist", "50%_off")
	w.Raw("return_date IS NULL")

	require.Equal(t, " WHERE store_id = $1 AND artist ILIKE '%' || $2 || '%' AND return_date IS NULL", w.String())
	require.Equal(t, []any{"s1", `50\%\_off`}, w.Args)
}
