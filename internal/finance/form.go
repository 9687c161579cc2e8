package finance

import "finance-backend/internal/models"

// FormState is an income record draft while it is being composed. Numeric
// fields use Amount so drafts round-trip through JSON with string or absent
// values intact.
type FormState struct {
	Date          string                 `json:"date"`
	Title         string                 `json:"title"`
	ClientID      *uint                  `json:"clientId"`
	Amount        Amount                 `json:"amount"`
	TaxPercent    Amount                 `json:"taxPercent"`
	TaxAmount     Amount                 `json:"taxAmount"`
	NpAmount      Amount                 `json:"npAmount"`
	InternalCosts Amount                 `json:"internalCosts"`
	Employees     []models.EmployeeShare `json:"employees"`
	Comment       string                 `json:"comment"`
}

// FieldChange is one edit applied to a draft. EmployeeID qualifies the
// per-entry fields payoutType and payoutAmount.
type FieldChange struct {
	Field      string `json:"field"`
	Value      any    `json:"value"`
	EmployeeID uint   `json:"employeeId,omitempty"`
}

// ApplyChange is the deterministic reducer behind the income form: it applies
// one field change and every recomputation that change triggers. percents
// maps employee id to the employee's default share.
//
// Rules:
//   - amount/taxPercent: when both are set, taxAmount = amount x percent / 100
//   - amount: every percent-type payout is recomputed, fixed ones untouched
//   - employees (roster of ids): entries allocated via AllocatePayouts
//   - payoutType: fixed->percent recomputes, percent->fixed keeps the value
//   - payoutAmount: stored as-is on fixed entries only
func ApplyChange(state FormState, ch FieldChange, percents map[uint]float64) FormState {
	switch ch.Field {
	case "amount":
		state.Amount = Amount(Num(ch.Value))
		state.refreshTaxAmount()
		state.Employees = RefreshPercentPayouts(state.Amount.Float(), state.Employees, percents)
	case "taxPercent":
		state.TaxPercent = Amount(Num(ch.Value))
		state.refreshTaxAmount()
	case "taxAmount":
		state.TaxAmount = Amount(Num(ch.Value))
	case "npAmount":
		state.NpAmount = Amount(Num(ch.Value))
	case "internalCosts":
		state.InternalCosts = Amount(Num(ch.Value))
	case "employees":
		state.Employees = AllocatePayouts(state.Amount.Float(), rosterIDs(ch.Value), state.Employees, percents)
	case "payoutType":
		t := models.PayoutType(stringify(ch.Value))
		state.Employees = SwitchPayoutType(state.Employees, ch.EmployeeID, t, state.Amount.Float(), percents)
	case "payoutAmount":
		state.Employees = SetFixedPayout(state.Employees, ch.EmployeeID, ch.Value)
	case "date":
		state.Date = stringify(ch.Value)
	case "title":
		state.Title = stringify(ch.Value)
	case "comment":
		state.Comment = stringify(ch.Value)
	case "clientId":
		if id := uint(Num(ch.Value)); id != 0 {
			state.ClientID = &id
		} else {
			state.ClientID = nil
		}
	}
	return state
}

func (s *FormState) refreshTaxAmount() {
	if s.Amount != 0 && s.TaxPercent != 0 {
		s.TaxAmount = Amount(s.Amount.Float() * s.TaxPercent.Float() / 100)
	}
}

func rosterIDs(v any) []uint {
	switch ids := v.(type) {
	case []uint:
		return ids
	case []any:
		out := make([]uint, 0, len(ids))
		for _, raw := range ids {
			if id := uint(Num(raw)); id != 0 {
				out = append(out, id)
			}
		}
		return out
	default:
		return nil
	}
}

// Record materializes the draft into an income record with payouts and profit
// finalized, ready to persist.
func (s FormState) Record() models.Income {
	inc := models.Income{
		Title:         s.Title,
		ClientID:      s.ClientID,
		Amount:        s.Amount.Float(),
		TaxPercent:    s.TaxPercent.Float(),
		TaxAmount:     s.TaxAmount.Float(),
		NpAmount:      s.NpAmount.Float(),
		InternalCosts: s.InternalCosts.Float(),
		Employees:     s.Employees,
		Comment:       s.Comment,
	}
	if inc.Employees == nil {
		inc.Employees = []models.EmployeeShare{}
	}
	if d, ok := ParseDate(s.Date); ok {
		inc.Date = d
	}
	inc.Profit = Profit(inc)
	return inc
}
