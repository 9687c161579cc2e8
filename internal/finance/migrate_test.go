package finance

import (
	"testing"

	"finance-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIncomeLegacy(t *testing.T) {
	empID := uint(1)
	fixed := string(models.PayoutTypeFixed)
	payouts := 500.0

	inc := models.Income{
		Amount:           1000,
		LegacyEmployeeID: &empID,
		LegacyPayoutType: &fixed,
		LegacyPayouts:    &payouts,
	}

	got := MigrateIncome(inc)
	require.Len(t, got.Employees, 1)
	assert.Equal(t, models.EmployeeShare{
		EmployeeID:   1,
		PayoutType:   models.PayoutTypeFixed,
		PayoutAmount: 500,
	}, got.Employees[0])

	// legacy columns stay in place; only the projection carries the new shape
	assert.NotNil(t, got.LegacyEmployeeID)
}

func TestMigrateIncomeLegacyDefaults(t *testing.T) {
	empID := uint(3)
	got := MigrateIncome(models.Income{LegacyEmployeeID: &empID})
	require.Len(t, got.Employees, 1)
	assert.Equal(t, models.PayoutTypePercent, got.Employees[0].PayoutType)
	assert.Equal(t, 0.0, got.Employees[0].PayoutAmount)
}

func TestMigrateIncomeNoEmployeeData(t *testing.T) {
	got := MigrateIncome(models.Income{Amount: 100})
	require.NotNil(t, got.Employees)
	assert.Empty(t, got.Employees)
}

func TestMigrateIncomeIdempotent(t *testing.T) {
	empID := uint(1)
	inc := models.Income{LegacyEmployeeID: &empID}

	once := MigrateIncome(inc)
	twice := MigrateIncome(once)
	assert.Equal(t, once, twice)

	// already-migrated records pass through untouched, empty list included
	migrated := models.Income{Employees: []models.EmployeeShare{}}
	assert.Equal(t, migrated, MigrateIncome(migrated))
}
