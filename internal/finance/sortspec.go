package finance

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Row is one flat table row, column key -> displayed value.
type Row map[string]any

// ColumnKind is the closed set of ways a sortable value is extracted.
type ColumnKind int

const (
	// ColumnDirect sorts on the row value under Key.
	ColumnDirect ColumnKind = iota
	// ColumnAlias sorts on the row value under SortKey instead of Key.
	ColumnAlias
	// ColumnComputed sorts on SortValue(row).
	ColumnComputed
)

// Column describes one report/table column.
type Column struct {
	Key       string
	Label     string
	Kind      ColumnKind
	SortKey   string
	SortValue func(Row) any
	// Numeric columns are summed into the totals row.
	Numeric bool
	// Action columns never participate in sorting.
	Unsortable bool
}

func (c Column) sortValueOf(row Row) any {
	switch c.Kind {
	case ColumnComputed:
		if c.SortValue != nil {
			return c.SortValue(row)
		}
		return nil
	case ColumnAlias:
		return row[c.SortKey]
	default:
		return row[c.Key]
	}
}

var collator = collate.New(language.Und, collate.IgnoreCase)

// Compare orders a against b on col. Two numeric values compare numerically;
// anything else falls back to locale-aware case-insensitive string order with
// nil rendered as the empty string. dir flips the sign.
func Compare(a, b Row, col Column, dir Direction) int {
	av := col.sortValueOf(a)
	bv := col.sortValueOf(b)

	var result int
	an, aNum := asNumber(av)
	bn, bNum := asNumber(bv)
	if aNum && bNum {
		switch {
		case an < bn:
			result = -1
		case an > bn:
			result = 1
		}
	} else {
		result = collator.CompareString(stringify(av), stringify(bv))
	}

	if dir == Descending {
		result = -result
	}
	return result
}

// SortRows sorts rows in place by col. Unsortable columns leave the order
// untouched.
func SortRows(rows []Row, col Column, dir Direction) {
	if col.Unsortable {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return Compare(rows[i], rows[j], col, dir) < 0
	})
}

func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return sanitize(x), true
	case float32:
		return sanitize(float64(x)), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the current table sort selection.
type SortState struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

// Click advances the sort state the way a column-header click does: a click
// on an unsortable column is a no-op, a click on the current column toggles
// direction, a click on any other column starts ascending there.
func (s SortState) Click(col Column) SortState {
	if col.Unsortable {
		return s
	}
	if s.Key == col.Key {
		if s.Dir == Ascending {
			return SortState{Key: col.Key, Dir: Descending}
		}
		return SortState{Key: col.Key, Dir: Ascending}
	}
	return SortState{Key: col.Key, Dir: Ascending}
}
