package finance

import "finance-backend/internal/models"

// MigrateIncome normalizes an income record to the multi-employee schema.
// A record whose Employees list is already present (non-nil, possibly empty)
// is returned unchanged. A record with the legacy single-employee columns
// gets exactly one synthesized entry; a record with neither gets an empty
// list. The result is a read-side projection: callers must not write it back
// unless the user explicitly saves the record.
func MigrateIncome(inc models.Income) models.Income {
	if inc.Employees != nil {
		return inc
	}
	if inc.LegacyEmployeeID != nil {
		payoutType := models.PayoutTypePercent
		if inc.LegacyPayoutType != nil && *inc.LegacyPayoutType != "" {
			payoutType = models.PayoutType(*inc.LegacyPayoutType)
		}
		var payout float64
		if inc.LegacyPayouts != nil {
			payout = Num(*inc.LegacyPayouts)
		}
		inc.Employees = []models.EmployeeShare{{
			EmployeeID:   *inc.LegacyEmployeeID,
			PayoutType:   payoutType,
			PayoutAmount: payout,
		}}
		return inc
	}
	inc.Employees = []models.EmployeeShare{}
	return inc
}

// MigrateIncomes applies MigrateIncome to every record.
func MigrateIncomes(incomes []models.Income) []models.Income {
	out := make([]models.Income, len(incomes))
	for i, inc := range incomes {
		out[i] = MigrateIncome(inc)
	}
	return out
}
