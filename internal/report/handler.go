package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"finance-backend/internal/database"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ReportResponse struct {
	Type         string        `json:"type"`
	IncomeRows   []finance.Row `json:"incomeRows"`
	ExpenseRows  []finance.Row `json:"expenseRows"`
	TotalIncome  float64       `json:"totalIncome"`
	TotalProfit  float64       `json:"totalProfit"`
	TotalExpense float64       `json:"totalExpense"`
}

func parseIDList(raw string) map[uint]bool {
	ids := make(map[uint]bool)
	for _, part := range strings.Split(raw, ",") {
		if id := uint(finance.Num(strings.TrimSpace(part))); id != 0 {
			ids[id] = true
		}
	}
	return ids
}

type reportData struct {
	reportType  string
	incomeRows  []finance.Row
	expenseRows []finance.Row
}

// assemble loads and filters everything a report needs and produces the two
// sorted row tables, without the totals rows.
func assemble(c *fiber.Ctx) (*reportData, error) {
	reportType := c.Query("type", TypeGeneral)
	from := c.Query("from")
	to := c.Query("to")
	query := strings.ToLower(c.Query("q"))
	clientIDs := parseIDList(c.Query("client_ids"))
	employeeIDs := parseIDList(c.Query("employee_ids"))

	var incomes []models.Income
	if err := database.DB.Order("date asc").Find(&incomes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not list incomes")
	}
	incomes = finance.MigrateIncomes(incomes)

	var filtered []models.Income
	for _, inc := range incomes {
		if (from != "" || to != "") && !finance.IsWithinRange(inc.Date.Format(finance.DateLayout), from, to) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(inc.Title), query) {
			continue
		}
		switch reportType {
		case TypeClient:
			if len(clientIDs) > 0 && (inc.ClientID == nil || !clientIDs[*inc.ClientID]) {
				continue
			}
		case TypeEmployee:
			if len(employeeIDs) > 0 && !anyShare(inc.Employees, employeeIDs) {
				continue
			}
		}
		filtered = append(filtered, inc)
	}

	var variable []models.VariableExpense
	if err := database.DB.Order("date asc").Find(&variable).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not list expenses")
	}
	var inPeriod []models.VariableExpense
	for _, e := range variable {
		if (from != "" || to != "") && !finance.IsWithinRange(e.Date.Format(finance.DateLayout), from, to) {
			continue
		}
		inPeriod = append(inPeriod, e)
	}

	// Fixed expenses are recurring: every report carries all of them,
	// whatever the period.
	var fixed []models.FixedExpense
	if err := database.DB.Order("name asc").Find(&fixed).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not list fixed expenses")
	}

	clientMap := nameMap[models.Client](func(m models.Client) (uint, string) { return m.ID, m.Name })
	employeeMap := nameMap[models.Employee](func(m models.Employee) (uint, string) { return m.ID, m.FullName })
	categoryMap := nameMap[models.ExpenseCategory](func(m models.ExpenseCategory) (uint, string) { return m.ID, m.Name })

	incomeRows := BuildIncomeRows(filtered, clientMap, employeeMap)
	expenseRows := BuildExpenseRows(inPeriod, fixed, categoryMap)

	if sortKey := c.Query("sort"); sortKey != "" {
		dir := finance.Ascending
		if c.Query("dir") == string(finance.Descending) {
			dir = finance.Descending
		}
		if col, ok := ColumnByKey(IncomeColumns(), sortKey); ok {
			finance.SortRows(incomeRows, col, dir)
		}
		if col, ok := ColumnByKey(ExpenseColumns(), sortKey); ok {
			finance.SortRows(expenseRows, col, dir)
		}
	}

	return &reportData{
		reportType:  reportType,
		incomeRows:  incomeRows,
		expenseRows: expenseRows,
	}, nil
}

func anyShare(shares []models.EmployeeShare, ids map[uint]bool) bool {
	for _, s := range shares {
		if ids[s.EmployeeID] {
			return true
		}
	}
	return false
}

func nameMap[T any](pick func(T) (uint, string)) map[uint]string {
	var items []T
	database.DB.Find(&items)
	names := make(map[uint]string, len(items))
	for _, item := range items {
		id, name := pick(item)
		names[id] = name
	}
	return names
}

// GET /api/reports
func GetReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := assemble(c)
		if err != nil {
			return err
		}

		totalIncome := finance.SumBy(data.incomeRows, func(r finance.Row) any { return r["amount"] })
		totalProfit := finance.SumBy(data.incomeRows, func(r finance.Row) any { return r["profit"] })
		totalExpense := finance.SumBy(data.expenseRows, func(r finance.Row) any { return r["amount"] })

		incomeRows := append(data.incomeRows, TotalsRow(data.incomeRows, IncomeColumns()))
		expenseRows := append(data.expenseRows, TotalsRow(data.expenseRows, ExpenseColumns()))

		return c.JSON(ReportResponse{
			Type:         data.reportType,
			IncomeRows:   incomeRows,
			ExpenseRows:  expenseRows,
			TotalIncome:  totalIncome,
			TotalProfit:  totalProfit,
			TotalExpense: totalExpense,
		})
	}
}

// GET /api/reports/export
// Same parameters as GET /api/reports, rendered as an xlsx workbook with one
// sheet per table.
func ExportReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := assemble(c)
		if err != nil {
			return err
		}

		f := excelize.NewFile()
		defer f.Close()

		if err := writeSheet(f, "Incomes", IncomeColumns(), append(data.incomeRows, TotalsRow(data.incomeRows, IncomeColumns()))); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}
		if err := writeSheet(f, "Expenses", ExpenseColumns(), append(data.expenseRows, TotalsRow(data.expenseRows, ExpenseColumns()))); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}
		f.DeleteSheet("Sheet1")

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write workbook")
		}

		filename := fmt.Sprintf("report_%s_%s.xlsx", data.reportType, time.Now().Format(finance.DateLayout))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}

func writeSheet(f *excelize.File, name string, cols []finance.Column, rows []finance.Row) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col.Label); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for i, col := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			value := row[col.Key]
			if col.Numeric {
				if n, ok := value.(float64); ok {
					if err := f.SetCellValue(name, cell, n); err != nil {
						return err
					}
					continue
				}
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
