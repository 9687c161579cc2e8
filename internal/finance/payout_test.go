package finance

import (
	"testing"

	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatePayoutsNewRoster(t *testing.T) {
	percents := map[uint]float64{1: 10, 2: 25}

	got := AllocatePayouts(1000, []uint{1, 2}, nil, percents)
	require.Len(t, got, 2)
	assert.Equal(t, models.EmployeeShare{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 100}, got[0])
	assert.Equal(t, models.EmployeeShare{EmployeeID: 2, PayoutType: models.PayoutTypePercent, PayoutAmount: 250}, got[1])
}

func TestAllocatePayoutsRemovalKeepsOthers(t *testing.T) {
	existing := []models.EmployeeShare{
		{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 100},
		{EmployeeID: 2, PayoutType: models.PayoutTypeFixed, PayoutAmount: 300},
	}

	got := AllocatePayouts(1000, []uint{2}, existing, map[uint]float64{1: 10})
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].EmployeeID)
	assert.Equal(t, 300.0, got[0].PayoutAmount)
}

func TestAllocatePayoutsMissingPercentOrAmount(t *testing.T) {
	got := AllocatePayouts(0, []uint{5}, nil, map[uint]float64{})
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].PayoutAmount)
}

func TestRefreshPercentPayoutsOnAmountChange(t *testing.T) {
	percents := map[uint]float64{1: 10, 2: 0}
	shares := []models.EmployeeShare{
		{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 100},
		{EmployeeID: 2, PayoutType: models.PayoutTypeFixed, PayoutAmount: 450},
	}

	got := RefreshPercentPayouts(2000, shares, percents)
	assert.Equal(t, 200.0, got[0].PayoutAmount, "percent payout follows amount")
	assert.Equal(t, 450.0, got[1].PayoutAmount, "fixed payout survives amount edits")
}

func TestSwitchPayoutType(t *testing.T) {
	percents := map[uint]float64{1: 10}

	t.Run("percent to fixed keeps current value", func(t *testing.T) {
		shares := []models.EmployeeShare{{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 100}}
		got := SwitchPayoutType(shares, 1, models.PayoutTypeFixed, 1000, percents)
		assert.Equal(t, models.PayoutTypeFixed, got[0].PayoutType)
		assert.Equal(t, 100.0, got[0].PayoutAmount)
	})

	t.Run("fixed to percent recomputes", func(t *testing.T) {
		shares := []models.EmployeeShare{{EmployeeID: 1, PayoutType: models.PayoutTypeFixed, PayoutAmount: 777}}
		got := SwitchPayoutType(shares, 1, models.PayoutTypePercent, 1000, percents)
		assert.Equal(t, 100.0, got[0].PayoutAmount)
	})
}

func TestSetFixedPayout(t *testing.T) {
	shares := []models.EmployeeShare{
		{EmployeeID: 1, PayoutType: models.PayoutTypeFixed, PayoutAmount: 100},
		{EmployeeID: 2, PayoutType: models.PayoutTypePercent, PayoutAmount: 50},
	}

	got := SetFixedPayout(shares, 1, "-25")
	assert.Equal(t, -25.0, got[0].PayoutAmount, "no domain check on fixed payouts")

	got = SetFixedPayout(got, 2, 999)
	assert.Equal(t, 50.0, got[1].PayoutAmount, "percent payouts ignore direct edits")
}

func TestTotalPayouts(t *testing.T) {
	shares := []models.EmployeeShare{
		{EmployeeID: 1, PayoutAmount: 100},
		{EmployeeID: 2, PayoutAmount: 250.5},
	}
	assert.Equal(t, 350.5, TotalPayouts(shares))
	assert.Equal(t, 0.0, TotalPayouts(nil))
}
