package bindings

import (
	"sort"
	"strings"
)

// Column names accepted by ColumnIndex, in display order.
var ColumnNames = [4]string{"label", "binding", "schema", "key"}

// ColumnIndex resolves a column name to its Columns() index.
func ColumnIndex(name string) (int, bool) {
	for i, n := range ColumnNames {
		if n == strings.ToLower(name) {
			return i, true
		}
	}
	return 0, false
}

// Matches reports whether needle appears in any display column,
// case-insensitively. An empty needle matches everything.
func (b Binding) Matches(needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, cell := range b.Columns() {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// Filter returns the rows matching substr, preserving order. The input
// is never mutated.
func Filter(rows []Binding, substr string) []Binding {
	out := make([]Binding, 0, len(rows))
	for _, r := range rows {
		if r.Matches(substr) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows in place by the display string of the given column,
// lexicographically. The sort is stable: rows with equal cells keep
// their prior order.
func Sort(rows []Binding, col int, desc bool) {
	if col < 0 || col >= len(ColumnNames) {
		return
	}
	sort.SliceStable(rows, func(a, b int) bool {
		va := rows[a].Columns()[col]
		vb := rows[b].Columns()[col]
		if desc {
			return va > vb
		}
		return va < vb
	})
}
