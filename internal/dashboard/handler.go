package dashboard

import (
	"finance-backend/internal/database"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const chartCap = 8

type SummaryResponse struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalProfit      float64 `json:"totalProfit"`
	VariableExpenses float64 `json:"variableExpenses"`
	FixedExpenses    float64 `json:"fixedExpenses"`
	NetResult        float64 `json:"netResult"`
	State            string  `json:"state"` // "surplus" | "deficit"
}

type ChartsResponse struct {
	IncomeByClient    []finance.RankedEntry `json:"incomeByClient"`
	ExpenseByCategory []finance.RankedEntry `json:"expenseByCategory"`
}

func periodIncomes(from, to string) ([]models.Income, error) {
	var incomes []models.Income
	if err := database.DB.Find(&incomes).Error; err != nil {
		return nil, err
	}
	incomes = finance.MigrateIncomes(incomes)
	if from == "" && to == "" {
		return incomes, nil
	}
	var filtered []models.Income
	for _, inc := range incomes {
		if finance.IsWithinRange(inc.Date.Format(finance.DateLayout), from, to) {
			filtered = append(filtered, inc)
		}
	}
	return filtered, nil
}

func periodVariableExpenses(from, to string) ([]models.VariableExpense, error) {
	var expenses []models.VariableExpense
	if err := database.DB.Find(&expenses).Error; err != nil {
		return nil, err
	}
	if from == "" && to == "" {
		return expenses, nil
	}
	var filtered []models.VariableExpense
	for _, e := range expenses {
		if finance.IsWithinRange(e.Date.Format(finance.DateLayout), from, to) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// GET /api/dashboard/summary?from=&to=
// Fixed expenses are recurring and ignore the period filter on purpose.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")

		incomes, err := periodIncomes(from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load incomes")
		}
		variable, err := periodVariableExpenses(from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load expenses")
		}
		var fixed []models.FixedExpense
		if err := database.DB.Find(&fixed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load fixed expenses")
		}

		totalIncome := finance.SumBy(incomes, func(i models.Income) any { return i.Amount })
		totalProfit := finance.SumBy(incomes, func(i models.Income) any { return i.Profit })
		variableTotal := finance.SumBy(variable, func(e models.VariableExpense) any { return e.Amount })
		fixedTotal := finance.SumBy(fixed, func(e models.FixedExpense) any { return e.Amount })

		net := totalProfit - variableTotal - fixedTotal
		state := "surplus"
		if net < 0 {
			state = "deficit"
		}

		return c.JSON(SummaryResponse{
			TotalIncome:      totalIncome,
			TotalProfit:      totalProfit,
			VariableExpenses: variableTotal,
			FixedExpenses:    fixedTotal,
			NetResult:        net,
			State:            state,
		})
	}
}

// GET /api/dashboard/top-clients?from=&to=&limit=
func TopClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		incomes, err := periodIncomes(c.Query("from"), c.Query("to"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load incomes")
		}

		limit := c.QueryInt("limit", 5)
		names := clientNames()

		totals := finance.Aggregate(incomes,
			func(i models.Income) uint {
				if i.ClientID == nil {
					return 0
				}
				return *i.ClientID
			},
			func(i models.Income) any { return i.Amount })

		return c.JSON(finance.TopN(totals, limit, func(id uint) string {
			if name, ok := names[id]; ok {
				return name
			}
			return "—"
		}))
	}
}

// GET /api/dashboard/top-employees?from=&to=&limit=
// Every participating employee is credited with the record's whole profit,
// so with shared records the column does not add up to total profit.
func TopEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		incomes, err := periodIncomes(c.Query("from"), c.Query("to"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load incomes")
		}

		limit := c.QueryInt("limit", 5)
		names := employeeNames()

		type attribution struct {
			employeeID uint
			profit     float64
		}
		var attributions []attribution
		for _, inc := range incomes {
			for _, s := range inc.Employees {
				attributions = append(attributions, attribution{s.EmployeeID, inc.Profit})
			}
		}

		totals := finance.Aggregate(attributions,
			func(a attribution) uint { return a.employeeID },
			func(a attribution) any { return a.profit })

		return c.JSON(finance.TopN(totals, limit, func(id uint) string {
			if name, ok := names[id]; ok {
				return name
			}
			return "—"
		}))
	}
}

// GET /api/dashboard/charts?from=&to=
func ChartsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")

		incomes, err := periodIncomes(from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load incomes")
		}
		variable, err := periodVariableExpenses(from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load expenses")
		}

		clients := clientNames()
		categories := categoryNames()

		byClient := finance.Aggregate(incomes,
			func(i models.Income) uint {
				if i.ClientID == nil {
					return 0
				}
				return *i.ClientID
			},
			func(i models.Income) any { return i.Amount })

		byCategory := finance.Aggregate(variable,
			func(e models.VariableExpense) uint {
				if e.CategoryID == nil {
					return 0
				}
				return *e.CategoryID
			},
			func(e models.VariableExpense) any { return e.Amount })

		return c.JSON(ChartsResponse{
			IncomeByClient: finance.TopN(byClient, chartCap, func(id uint) string {
				if name, ok := clients[id]; ok {
					return name
				}
				return "—"
			}),
			ExpenseByCategory: finance.TopN(byCategory, chartCap, func(id uint) string {
				if name, ok := categories[id]; ok {
					return name
				}
				return "—"
			}),
		})
	}
}

func clientNames() map[uint]string {
	var clients []models.Client
	database.DB.Find(&clients)
	names := make(map[uint]string, len(clients))
	for _, cl := range clients {
		names[cl.ID] = cl.Name
	}
	return names
}

func employeeNames() map[uint]string {
	var employees []models.Employee
	database.DB.Find(&employees)
	names := make(map[uint]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}
	return names
}

func categoryNames() map[uint]string {
	var categories []models.ExpenseCategory
	database.DB.Find(&categories)
	names := make(map[uint]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}
