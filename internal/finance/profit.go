package finance

import "finance-backend/internal/models"

// Profit reduces an income record to its signed profit:
//
//	amount - taxAmount - npAmount - internalCosts - total payouts
//
// Every term is coerced so absent or malformed values contribute 0. Legacy
// records are migrated first, so the payout term works for both schemas.
func Profit(inc models.Income) float64 {
	inc = MigrateIncome(inc)
	return Num(inc.Amount) -
		Num(inc.TaxAmount) -
		Num(inc.NpAmount) -
		Num(inc.InternalCosts) -
		TotalPayouts(inc.Employees)
}
