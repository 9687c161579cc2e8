package report

import (
	"finance-backend/internal/finance"
	"finance-backend/internal/models"
)

const (
	TypeGeneral  = "general"
	TypeClient   = "client"
	TypeEmployee = "employee"
)

// IncomeColumns is the income table of a report. Client and employees sort
// on the resolved names already present in the row.
func IncomeColumns() []finance.Column {
	return []finance.Column{
		{Key: "date", Label: "Date", Kind: finance.ColumnAlias, SortKey: "dateRaw"},
		{Key: "client", Label: "Client"},
		{Key: "title", Label: "Title"},
		{Key: "employees", Label: "Employees"},
		{Key: "amount", Label: "Amount", Numeric: true},
		{Key: "taxPercent", Label: "Tax %", Numeric: true},
		{Key: "taxAmount", Label: "Tax", Numeric: true},
		{Key: "npAmount", Label: "Non-production", Numeric: true},
		{Key: "internalCosts", Label: "Internal costs", Numeric: true},
		{Key: "payouts", Label: "Payouts", Numeric: true},
		{Key: "profit", Label: "Profit", Numeric: true},
		{Key: "comment", Label: "Comment"},
	}
}

func ExpenseColumns() []finance.Column {
	return []finance.Column{
		{Key: "date", Label: "Date", Kind: finance.ColumnAlias, SortKey: "dateRaw"},
		{Key: "category", Label: "Category"},
		{Key: "title", Label: "Title"},
		{Key: "amount", Label: "Amount", Numeric: true},
		{Key: "comment", Label: "Comment"},
	}
}

func BuildIncomeRows(incomes []models.Income, clients, employees map[uint]string) []finance.Row {
	rows := make([]finance.Row, 0, len(incomes))
	for _, inc := range incomes {
		clientName := "—"
		if inc.ClientID != nil {
			if name, ok := clients[*inc.ClientID]; ok {
				clientName = name
			}
		}
		rows = append(rows, finance.Row{
			"date":          inc.Date.Format("02.01.2006"),
			"dateRaw":       inc.Date.Format(finance.DateLayout),
			"client":        clientName,
			"title":         inc.Title,
			"employees":     employeeList(inc.Employees, employees),
			"amount":        inc.Amount,
			"taxPercent":    inc.TaxPercent,
			"taxAmount":     inc.TaxAmount,
			"npAmount":      inc.NpAmount,
			"internalCosts": inc.InternalCosts,
			"payouts":       finance.TotalPayouts(inc.Employees),
			"profit":        inc.Profit,
			"comment":       inc.Comment,
		})
	}
	return rows
}

func employeeList(shares []models.EmployeeShare, names map[uint]string) string {
	if len(shares) == 0 {
		return "—"
	}
	out := ""
	for i, s := range shares {
		if i > 0 {
			out += ", "
		}
		if name := names[s.EmployeeID]; name != "" {
			out += name
		} else {
			out += "—"
		}
	}
	return out
}

// BuildExpenseRows merges the variable expenses of the period with every
// fixed expense. Fixed expenses are recurring and carry no date, so they get
// a placeholder date and a fixed category label.
func BuildExpenseRows(variable []models.VariableExpense, fixed []models.FixedExpense, categories map[uint]string) []finance.Row {
	rows := make([]finance.Row, 0, len(variable)+len(fixed))
	for _, e := range variable {
		category := "—"
		if e.CategoryID != nil {
			if name, ok := categories[*e.CategoryID]; ok {
				category = name
			}
		}
		rows = append(rows, finance.Row{
			"date":     e.Date.Format("02.01.2006"),
			"dateRaw":  e.Date.Format(finance.DateLayout),
			"category": category,
			"title":    e.Title,
			"amount":   e.Amount,
			"comment":  e.Comment,
		})
	}
	for _, e := range fixed {
		rows = append(rows, finance.Row{
			"date":     "Recurring",
			"dateRaw":  "",
			"category": "Fixed expense",
			"title":    e.Name,
			"amount":   e.Amount,
			"comment":  e.Period,
		})
	}
	return rows
}

// TotalsRow sums the numeric columns of rows. The first column carries the
// TOTAL label, every other non-numeric column stays blank. Callers append it
// after sorting so it always closes the table.
func TotalsRow(rows []finance.Row, cols []finance.Column) finance.Row {
	total := finance.Row{}
	for i, col := range cols {
		switch {
		case i == 0:
			total[col.Key] = "TOTAL"
		case col.Numeric:
			total[col.Key] = finance.SumBy(rows, func(r finance.Row) any { return r[col.Key] })
		default:
			total[col.Key] = ""
		}
	}
	return total
}

func ColumnByKey(cols []finance.Column, key string) (finance.Column, bool) {
	for _, col := range cols {
		if col.Key == key {
			return col, true
		}
	}
	return finance.Column{}, false
}
