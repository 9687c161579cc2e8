package finance

import "finance-backend/internal/models"

// PercentPayout computes the derived payout for a percent-type entry.
func PercentPayout(amount, percent float64) float64 {
	return sanitize(amount) * sanitize(percent) / 100
}

// TotalPayouts sums the payout amounts of all entries.
func TotalPayouts(shares []models.EmployeeShare) float64 {
	return SumBy(shares, func(s models.EmployeeShare) any { return s.PayoutAmount })
}

// AllocatePayouts reconciles an income record's employee entries against the
// selected roster. Entries for ids no longer selected are dropped; existing
// entries are kept in roster order with percent-type payouts recomputed from
// amount; new ids get a percent-type entry. percents maps employee id to the
// employee's default share. Fixed-type payouts are never touched here.
func AllocatePayouts(amount float64, roster []uint, existing []models.EmployeeShare, percents map[uint]float64) []models.EmployeeShare {
	byID := make(map[uint]models.EmployeeShare, len(existing))
	for _, s := range existing {
		if _, dup := byID[s.EmployeeID]; !dup {
			byID[s.EmployeeID] = s
		}
	}

	out := make([]models.EmployeeShare, 0, len(roster))
	for _, id := range roster {
		if s, ok := byID[id]; ok {
			if s.PayoutType == models.PayoutTypePercent {
				s.PayoutAmount = PercentPayout(amount, percents[id])
			}
			out = append(out, s)
			continue
		}
		out = append(out, models.EmployeeShare{
			EmployeeID:   id,
			PayoutType:   models.PayoutTypePercent,
			PayoutAmount: PercentPayout(amount, percents[id]),
		})
	}
	return out
}

// RefreshPercentPayouts recomputes every percent-type entry after the record
// amount changed. Fixed-type entries keep their value.
func RefreshPercentPayouts(amount float64, shares []models.EmployeeShare, percents map[uint]float64) []models.EmployeeShare {
	out := make([]models.EmployeeShare, len(shares))
	for i, s := range shares {
		if s.PayoutType == models.PayoutTypePercent {
			s.PayoutAmount = PercentPayout(amount, percents[s.EmployeeID])
		}
		out[i] = s
	}
	return out
}

// SwitchPayoutType changes the policy of one entry. Switching to percent
// recomputes the payout immediately; switching to fixed keeps the current
// value as the new fixed baseline.
func SwitchPayoutType(shares []models.EmployeeShare, employeeID uint, newType models.PayoutType, amount float64, percents map[uint]float64) []models.EmployeeShare {
	out := make([]models.EmployeeShare, len(shares))
	for i, s := range shares {
		if s.EmployeeID == employeeID {
			s.PayoutType = newType
			if newType == models.PayoutTypePercent {
				s.PayoutAmount = PercentPayout(amount, percents[employeeID])
			}
		}
		out[i] = s
	}
	return out
}

// SetFixedPayout stores a user-entered payout on a fixed-type entry as-is
// (negative and zero included). Percent-type entries are computed fields and
// ignore direct edits.
func SetFixedPayout(shares []models.EmployeeShare, employeeID uint, value any) []models.EmployeeShare {
	out := make([]models.EmployeeShare, len(shares))
	for i, s := range shares {
		if s.EmployeeID == employeeID && s.PayoutType == models.PayoutTypeFixed {
			s.PayoutAmount = Num(value)
		}
		out[i] = s
	}
	return out
}
