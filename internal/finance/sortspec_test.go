package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortRowsNumericDescending(t *testing.T) {
	rows := []Row{{"amount": 50.0}, {"amount": 200.0}, {"amount": 10.0}}
	col := Column{Key: "amount", Numeric: true}

	SortRows(rows, col, Descending)

	assert.Equal(t, 200.0, rows[0]["amount"])
	assert.Equal(t, 50.0, rows[1]["amount"])
	assert.Equal(t, 10.0, rows[2]["amount"])
}

func TestSortRowsStringCaseInsensitive(t *testing.T) {
	rows := []Row{{"title": "banana"}, {"title": "Apple"}, {"title": "cherry"}}
	col := Column{Key: "title"}

	SortRows(rows, col, Ascending)

	assert.Equal(t, "Apple", rows[0]["title"])
	assert.Equal(t, "banana", rows[1]["title"])
	assert.Equal(t, "cherry", rows[2]["title"])
}

func TestSortRowsComputedGroupsMissing(t *testing.T) {
	// a computed column yields a placeholder for rows with no related entity;
	// those rows must stay grouped together
	names := map[float64]string{1: "Alpha", 2: "Beta"}
	col := Column{
		Key:  "client",
		Kind: ColumnComputed,
		SortValue: func(r Row) any {
			if n, ok := names[Num(r["clientId"])]; ok {
				return n
			}
			return "—"
		},
	}
	rows := []Row{
		{"clientId": 0.0}, {"clientId": 2.0}, {"clientId": 0.0}, {"clientId": 1.0},
	}

	SortRows(rows, col, Ascending)

	var dashAt []int
	for i, r := range rows {
		if Num(r["clientId"]) == 0 {
			dashAt = append(dashAt, i)
		}
	}
	assert.Len(t, dashAt, 2)
	assert.Equal(t, dashAt[0]+1, dashAt[1], "placeholder rows stay adjacent")
}

func TestSortRowsAliasKey(t *testing.T) {
	rows := []Row{
		{"date": "15.06.2024", "dateRaw": "2024-06-15"},
		{"date": "01.01.2024", "dateRaw": "2024-01-01"},
	}
	col := Column{Key: "date", Kind: ColumnAlias, SortKey: "dateRaw"}

	SortRows(rows, col, Ascending)
	assert.Equal(t, "2024-01-01", rows[0]["dateRaw"])
}

func TestSortRowsUnsortableNoOp(t *testing.T) {
	rows := []Row{{"amount": 2.0}, {"amount": 1.0}}
	SortRows(rows, Column{Key: "actions", Unsortable: true}, Ascending)
	assert.Equal(t, 2.0, rows[0]["amount"])
}

func TestSortRowsMixedTypesCompareAsStrings(t *testing.T) {
	rows := []Row{{"v": "zeta"}, {"v": 10.0}, {"v": nil}}
	SortRows(rows, Column{Key: "v"}, Ascending)

	// nil renders as "" and sorts first; the number renders as "10"
	assert.Nil(t, rows[0]["v"])
	assert.Equal(t, 10.0, rows[1]["v"])
	assert.Equal(t, "zeta", rows[2]["v"])
}

func TestSortStateClick(t *testing.T) {
	date := Column{Key: "date"}
	amount := Column{Key: "amount", Numeric: true}
	actions := Column{Key: "actions", Unsortable: true}

	var s SortState
	s = s.Click(date)
	assert.Equal(t, SortState{Key: "date", Dir: Ascending}, s)

	s = s.Click(date)
	assert.Equal(t, SortState{Key: "date", Dir: Descending}, s)

	s = s.Click(date)
	assert.Equal(t, SortState{Key: "date", Dir: Ascending}, s)

	s = s.Click(amount)
	assert.Equal(t, SortState{Key: "amount", Dir: Ascending}, s)

	assert.Equal(t, s, s.Click(actions), "action columns never sort")
}
