package finance

import (
	"math"
	"testing"

	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProfit(t *testing.T) {
	inc := models.Income{
		Amount:        10000,
		TaxAmount:     600,
		NpAmount:      400,
		InternalCosts: 1000,
		Employees: []models.EmployeeShare{
			{EmployeeID: 1, PayoutType: models.PayoutTypePercent, PayoutAmount: 1000},
			{EmployeeID: 2, PayoutType: models.PayoutTypeFixed, PayoutAmount: 2000},
		},
	}
	assert.Equal(t, 5000.0, Profit(inc))
}

func TestProfitAbsentFieldsContributeZero(t *testing.T) {
	assert.Equal(t, 1000.0, Profit(models.Income{Amount: 1000}))
	assert.Equal(t, 0.0, Profit(models.Income{}))
}

func TestProfitNaNCollapsesToZero(t *testing.T) {
	inc := models.Income{Amount: 500, TaxAmount: math.NaN()}
	assert.Equal(t, 500.0, Profit(inc))
}

func TestProfitLegacyRecord(t *testing.T) {
	empID := uint(1)
	payouts := 300.0
	inc := models.Income{
		Amount:           1000,
		TaxAmount:        100,
		LegacyEmployeeID: &empID,
		LegacyPayouts:    &payouts,
	}
	assert.Equal(t, 600.0, Profit(inc))
}
