package report

import (
	"testing"
	"time"

	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse(finance.DateLayout, s)
	return t
}

func uintPtr(v uint) *uint { return &v }

func TestBuildIncomeRows(t *testing.T) {
	incomes := []models.Income{
		{
			Date:     day("2024-06-15"),
			Title:    "Website build",
			ClientID: uintPtr(1),
			Amount:   1000,
			Employees: []models.EmployeeShare{
				{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 100},
				{EmployeeID: 2, PayoutType: models.PayoutTypeFixed, PayoutAmount: 300},
			},
			Profit: 600,
		},
		{Date: day("2024-06-20"), Title: "Consulting", Amount: 500, Employees: []models.EmployeeShare{}, Profit: 500},
	}
	clients := map[uint]string{1: "Acme"}
	employees := map[uint]string{1: "Alice", 2: "Bob"}

	rows := BuildIncomeRows(incomes, clients, employees)
	require.Len(t, rows, 2)

	assert.Equal(t, "15.06.2024", rows[0]["date"])
	assert.Equal(t, "2024-06-15", rows[0]["dateRaw"])
	assert.Equal(t, "Acme", rows[0]["client"])
	assert.Equal(t, "Alice, Bob", rows[0]["employees"])
	assert.Equal(t, 400.0, rows[0]["payouts"])
	assert.Equal(t, 600.0, rows[0]["profit"])

	// no client, no employees
	assert.Equal(t, "—", rows[1]["client"])
	assert.Equal(t, "—", rows[1]["employees"])
}

func TestBuildExpenseRowsIncludesAllFixed(t *testing.T) {
	variable := []models.VariableExpense{
		{Date: day("2024-06-10"), Title: "Hosting", CategoryID: uintPtr(3), Amount: 40, Comment: "monthly"},
	}
	fixed := []models.FixedExpense{
		{Name: "Office rent", Amount: 1200, Period: "monthly"},
		{Name: "Accounting", Amount: 150, Period: "monthly"},
	}

	rows := BuildExpenseRows(variable, fixed, map[uint]string{3: "Infrastructure"})
	require.Len(t, rows, 3)

	assert.Equal(t, "Infrastructure", rows[0]["category"])
	assert.Equal(t, "Recurring", rows[1]["date"])
	assert.Equal(t, "Fixed expense", rows[1]["category"])
	assert.Equal(t, "Office rent", rows[1]["title"])
	assert.Equal(t, 1200.0, rows[1]["amount"])
	assert.Equal(t, "Accounting", rows[2]["title"])
}

func TestTotalsRowSumsNumericColumns(t *testing.T) {
	rows := []finance.Row{
		{"date": "01.06.2024", "category": "A", "title": "x", "amount": 100.0, "comment": "c"},
		{"date": "02.06.2024", "category": "B", "title": "y", "amount": 250.5, "comment": ""},
	}

	total := TotalsRow(rows, ExpenseColumns())

	assert.Equal(t, "TOTAL", total["date"])
	assert.Equal(t, 350.5, total["amount"])
	assert.Equal(t, "", total["category"])
	assert.Equal(t, "", total["title"])
	assert.Equal(t, "", total["comment"])
}

func TestTotalsRowEmptyTable(t *testing.T) {
	total := TotalsRow(nil, IncomeColumns())

	assert.Equal(t, "TOTAL", total["date"])
	assert.Equal(t, 0.0, total["amount"])
	assert.Equal(t, 0.0, total["profit"])
}

func TestIncomeColumnsSortOnResolvedValues(t *testing.T) {
	rows := []finance.Row{
		{"dateRaw": "2024-06-20", "date": "20.06.2024", "amount": 500.0},
		{"dateRaw": "2024-06-15", "date": "15.06.2024", "amount": 1000.0},
	}

	col, ok := ColumnByKey(IncomeColumns(), "date")
	require.True(t, ok)
	finance.SortRows(rows, col, finance.Ascending)

	assert.Equal(t, "15.06.2024", rows[0]["date"])
	assert.Equal(t, "20.06.2024", rows[1]["date"])
}

func TestColumnByKeyUnknown(t *testing.T) {
	_, ok := ColumnByKey(IncomeColumns(), "nope")
	assert.False(t, ok)
}
