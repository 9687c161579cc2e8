package income

import (
	"testing"

	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSharesPercentDerivedFixedKept(t *testing.T) {
	percents := map[uint]float64{1: 10, 2: 25}

	shares := normalizeShares(2000, []EmployeeShareRequest{
		{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 999}, // submitted value ignored
		{EmployeeID: 2, PayoutType: models.PayoutTypeFixed, PayoutAmount: 300},
	}, percents)

	require.Len(t, shares, 2)
	assert.Equal(t, 200.0, shares[0].PayoutAmount)
	assert.Equal(t, models.PayoutTypePercent, shares[0].PayoutType)
	assert.Equal(t, 300.0, shares[1].PayoutAmount)
	assert.Equal(t, models.PayoutTypeFixed, shares[1].PayoutType)
}

func TestNormalizeSharesDefaultsToPercent(t *testing.T) {
	shares := normalizeShares(1000, []EmployeeShareRequest{
		{EmployeeID: 5}, // no type submitted
	}, map[uint]float64{5: 15})

	require.Len(t, shares, 1)
	assert.Equal(t, models.PayoutTypePercent, shares[0].PayoutType)
	assert.Equal(t, 150.0, shares[0].PayoutAmount)
}

func TestNormalizeSharesUnknownEmployeePercentZero(t *testing.T) {
	shares := normalizeShares(1000, []EmployeeShareRequest{
		{EmployeeID: 99, PayoutType: models.PayoutTypePercent},
	}, map[uint]float64{})

	require.Len(t, shares, 1)
	assert.Equal(t, 0.0, shares[0].PayoutAmount)
}

func TestJoinEmployeeNames(t *testing.T) {
	names := map[uint]string{1: "Alice", 2: "Bob"}
	shares := []models.EmployeeShare{
		{EmployeeID: 1}, {EmployeeID: 2}, {EmployeeID: 7},
	}

	assert.Equal(t, "Alice, Bob, —", joinEmployeeNames(shares, names))
	assert.Equal(t, "—", joinEmployeeNames(nil, names))
}

func TestListColumnsClientSortsByResolvedName(t *testing.T) {
	clients := map[uint]string{1: "Zeta", 2: "Acme"}
	cols := listColumns(clients, nil)

	rows := []finance.Row{
		{"clientId": 1.0, "client": "Zeta"},
		{"clientId": 2.0, "client": "Acme"},
		{"clientId": 0.0, "client": "—"},
	}

	col, ok := columnByKey(cols, "client")
	require.True(t, ok)
	finance.SortRows(rows, col, finance.Ascending)

	// named clients in name order; the placeholder groups by its own value
	idx := func(name string) int {
		for i, r := range rows {
			if r["client"] == name {
				return i
			}
		}
		return -1
	}
	assert.Less(t, idx("Acme"), idx("Zeta"))
}

func TestListColumnsActionsUnsortable(t *testing.T) {
	cols := listColumns(nil, nil)
	col, ok := columnByKey(cols, "actions")
	require.True(t, ok)
	assert.True(t, col.Unsortable)
}
