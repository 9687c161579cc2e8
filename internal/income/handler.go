package income

import (
	"fmt"
	"strings"

	"finance-backend/internal/audit"
	"finance-backend/internal/auth"
	"finance-backend/internal/database"
	"finance-backend/internal/employee"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeShareRequest struct {
	EmployeeID   uint              `json:"employeeId"`
	PayoutType   models.PayoutType `json:"payoutType"`
	PayoutAmount finance.Amount    `json:"payoutAmount"`
}

type CreateIncomeRequest struct {
	Date          string                 `json:"date"` // "2024-06-15"
	Title         string                 `json:"title"`
	ClientID      *uint                  `json:"clientId"`
	Amount        finance.Amount         `json:"amount"`
	TaxPercent    finance.Amount         `json:"taxPercent"`
	TaxAmount     finance.Amount         `json:"taxAmount"`
	NpAmount      finance.Amount         `json:"npAmount"`
	InternalCosts finance.Amount         `json:"internalCosts"`
	Employees     []EmployeeShareRequest `json:"employees"`
	Comment       string                 `json:"comment"`
}

type UpdateIncomeRequest struct {
	Date          *string                 `json:"date"`
	Title         *string                 `json:"title"`
	ClientID      *uint                   `json:"clientId"`
	Amount        *finance.Amount         `json:"amount"`
	TaxPercent    *finance.Amount         `json:"taxPercent"`
	TaxAmount     *finance.Amount         `json:"taxAmount"`
	NpAmount      *finance.Amount         `json:"npAmount"`
	InternalCosts *finance.Amount         `json:"internalCosts"`
	Employees     *[]EmployeeShareRequest `json:"employees"`
	Comment       *string                 `json:"comment"`
}

type IncomeResponse struct {
	ID            uint                   `json:"id"`
	Date          string                 `json:"date"`
	Title         string                 `json:"title"`
	ClientID      *uint                  `json:"clientId"`
	Amount        float64                `json:"amount"`
	TaxPercent    float64                `json:"taxPercent"`
	TaxAmount     float64                `json:"taxAmount"`
	NpAmount      float64                `json:"npAmount"`
	InternalCosts float64                `json:"internalCosts"`
	Employees     []models.EmployeeShare `json:"employees"`
	Profit        float64                `json:"profit"`
	Comment       string                 `json:"comment"`
}

type ListIncomesResponse struct {
	Items       []finance.Row `json:"items"`
	TotalAmount float64       `json:"totalAmount"`
	TotalProfit float64       `json:"totalProfit"`
}

func toResponse(inc models.Income) IncomeResponse {
	inc = finance.MigrateIncome(inc)
	return IncomeResponse{
		ID:            inc.ID,
		Date:          inc.Date.Format(finance.DateLayout),
		Title:         inc.Title,
		ClientID:      inc.ClientID,
		Amount:        inc.Amount,
		TaxPercent:    inc.TaxPercent,
		TaxAmount:     inc.TaxAmount,
		NpAmount:      inc.NpAmount,
		InternalCosts: inc.InternalCosts,
		Employees:     inc.Employees,
		Profit:        inc.Profit,
		Comment:       inc.Comment,
	}
}

// normalizeShares turns submitted entries into stored shares: percent-type
// payouts are derived from the record amount and the employee's default
// share, fixed-type payouts are taken as submitted.
func normalizeShares(amount float64, submitted []EmployeeShareRequest, percents map[uint]float64) []models.EmployeeShare {
	shares := make([]models.EmployeeShare, 0, len(submitted))
	for _, s := range submitted {
		payoutType := s.PayoutType
		if payoutType != models.PayoutTypeFixed {
			payoutType = models.PayoutTypePercent
		}
		share := models.EmployeeShare{
			EmployeeID:   s.EmployeeID,
			PayoutType:   payoutType,
			PayoutAmount: s.PayoutAmount.Float(),
		}
		if payoutType == models.PayoutTypePercent {
			share.PayoutAmount = finance.PercentPayout(amount, percents[s.EmployeeID])
		}
		shares = append(shares, share)
	}
	return shares
}

func getUserInfo(c *fiber.Ctx) (uint, string) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, ""
	}
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return userID, ""
	}
	return userID, user.Name
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

func joinEmployeeNames(shares []models.EmployeeShare, names map[uint]string) string {
	if len(shares) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(shares))
	for _, s := range shares {
		name := names[s.EmployeeID]
		if name == "" {
			name = "—"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// listColumns mirrors the income table of the SPA: date sorts on its raw
// form, client and employees sort on resolved names, the rest sort directly.
func listColumns(clients, employees map[uint]string) []finance.Column {
	return []finance.Column{
		{Key: "date", Label: "Date", Kind: finance.ColumnAlias, SortKey: "dateRaw"},
		{Key: "client", Label: "Client", Kind: finance.ColumnComputed, SortValue: func(r finance.Row) any {
			if name, ok := clients[uint(finance.Num(r["clientId"]))]; ok {
				return name
			}
			return "—"
		}},
		{Key: "title", Label: "Title"},
		{Key: "employees", Label: "Employees", Kind: finance.ColumnComputed, SortValue: func(r finance.Row) any {
			return r["employees"]
		}},
		{Key: "amount", Label: "Amount", Numeric: true},
		{Key: "profit", Label: "Profit", Numeric: true},
		{Key: "actions", Label: "Actions", Unsortable: true},
	}
}

func columnByKey(cols []finance.Column, key string) (finance.Column, bool) {
	for _, col := range cols {
		if col.Key == key {
			return col, true
		}
	}
	return finance.Column{}, false
}

// GET /api/incomes?from=&to=&client_id=&employee_id=&q=&sort=&dir=
func ListIncomesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var incomes []models.Income
		if err := database.DB.Order("date desc").Find(&incomes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list incomes")
		}
		incomes = finance.MigrateIncomes(incomes)

		from := c.Query("from")
		to := c.Query("to")
		clientID := uint(finance.Num(c.Query("client_id")))
		employeeID := uint(finance.Num(c.Query("employee_id")))
		query := strings.ToLower(c.Query("q"))

		clients := clientNames()
		employees := employeeNames()

		var filtered []models.Income
		for _, inc := range incomes {
			if (from != "" || to != "") && !finance.IsWithinRange(inc.Date.Format(finance.DateLayout), from, to) {
				continue
			}
			if clientID != 0 && (inc.ClientID == nil || *inc.ClientID != clientID) {
				continue
			}
			if employeeID != 0 && !hasEmployee(inc, employeeID) {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(inc.Title), query) {
				continue
			}
			filtered = append(filtered, inc)
		}

		rows := make([]finance.Row, 0, len(filtered))
		for _, inc := range filtered {
			clientName := "—"
			if inc.ClientID != nil {
				if name, ok := clients[*inc.ClientID]; ok {
					clientName = name
				}
			}
			rows = append(rows, finance.Row{
				"id":            inc.ID,
				"date":          inc.Date.Format("02.01.2006"),
				"dateRaw":       inc.Date.Format(finance.DateLayout),
				"clientId":      float64(clientIDOrZero(inc.ClientID)),
				"client":        clientName,
				"title":         inc.Title,
				"employees":     joinEmployeeNames(inc.Employees, employees),
				"shares":        inc.Employees,
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

		cols := listColumns(clients, employees)
		if sortKey := c.Query("sort"); sortKey != "" {
			if col, ok := columnByKey(cols, sortKey); ok {
				dir := finance.Ascending
				if c.Query("dir") == string(finance.Descending) {
					dir = finance.Descending
				}
				finance.SortRows(rows, col, dir)
			}
		}

		return c.JSON(ListIncomesResponse{
			Items:       rows,
			TotalAmount: finance.SumBy(filtered, func(i models.Income) any { return i.Amount }),
			TotalProfit: finance.SumBy(filtered, func(i models.Income) any { return i.Profit }),
		})
	}
}

func hasEmployee(inc models.Income, employeeID uint) bool {
	for _, s := range inc.Employees {
		if s.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

func clientIDOrZero(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

// GET /api/incomes/:id
func GetIncomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inc models.Income
		if err := database.DB.First(&inc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Income not found")
		}

		return c.JSON(toResponse(inc))
	}
}

// POST /api/incomes
func CreateIncomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateIncomeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title is required")
		}
		d, ok := finance.ParseDate(body.Date)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		percents, err := employee.DefaultPercents()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load employees")
		}

		amount := body.Amount.Float()
		inc := models.Income{
			Date:          d,
			Title:         body.Title,
			ClientID:      body.ClientID,
			Amount:        amount,
			TaxPercent:    body.TaxPercent.Float(),
			TaxAmount:     body.TaxAmount.Float(),
			NpAmount:      body.NpAmount.Float(),
			InternalCosts: body.InternalCosts.Float(),
			Employees:     normalizeShares(amount, body.Employees, percents),
			Comment:       body.Comment,
		}
		inc.Profit = finance.Profit(inc)

		if err := database.DB.Create(&inc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create income")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "income",
			EntityID:    inc.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Income added: %s - %.2f", inc.Title, inc.Amount),
			After:       toResponse(inc),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(inc))
	}
}

// PUT /api/incomes/:id
// Patch semantics: absent fields keep their value. Percent payouts are
// refreshed against the resulting amount; the explicit save is what finally
// writes a legacy record in the new employees shape.
func UpdateIncomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inc models.Income
		if err := database.DB.First(&inc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Income not found")
		}
		inc = finance.MigrateIncome(inc)
		before := toResponse(inc)

		var body UpdateIncomeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		percents, err := employee.DefaultPercents()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load employees")
		}

		if body.Date != nil {
			d, ok := finance.ParseDate(*body.Date)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			inc.Date = d
		}
		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			inc.Title = title
		}
		if body.ClientID != nil {
			inc.ClientID = body.ClientID
		}
		if body.Amount != nil {
			inc.Amount = body.Amount.Float()
		}
		if body.TaxPercent != nil {
			inc.TaxPercent = body.TaxPercent.Float()
		}
		if body.TaxAmount != nil {
			inc.TaxAmount = body.TaxAmount.Float()
		}
		if body.NpAmount != nil {
			inc.NpAmount = body.NpAmount.Float()
		}
		if body.InternalCosts != nil {
			inc.InternalCosts = body.InternalCosts.Float()
		}
		if body.Employees != nil {
			inc.Employees = normalizeShares(inc.Amount, *body.Employees, percents)
		} else {
			inc.Employees = finance.RefreshPercentPayouts(inc.Amount, inc.Employees, percents)
		}
		if body.Comment != nil {
			inc.Comment = *body.Comment
		}

		inc.Profit = finance.Profit(inc)

		if err := database.DB.Save(&inc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update income")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "income",
			EntityID:    inc.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Income updated: %s", inc.Title),
			Before:      before,
			After:       toResponse(inc),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.JSON(toResponse(inc))
	}
}

// DELETE /api/incomes/:id
func DeleteIncomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inc models.Income
		if err := database.DB.First(&inc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Income not found")
		}

		if err := database.DB.Delete(&inc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete income")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "income",
			EntityID:    inc.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Income deleted: %s", inc.Title),
			Before:      toResponse(inc),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

type PreviewRequest struct {
	Record finance.FormState   `json:"record"`
	Change finance.FieldChange `json:"change"`
}

type PreviewResponse struct {
	Record       finance.FormState `json:"record"`
	TotalPayouts float64           `json:"totalPayouts"`
	Profit       float64           `json:"profit"`
}

// POST /api/incomes/preview
// Applies one form field change to a draft and returns the recomputed draft.
// Nothing is persisted.
func PreviewIncomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PreviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		percents, err := employee.DefaultPercents()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load employees")
		}

		next := finance.ApplyChange(body.Record, body.Change, percents)
		rec := next.Record()

		return c.JSON(PreviewResponse{
			Record:       next,
			TotalPayouts: finance.TotalPayouts(rec.Employees),
			Profit:       rec.Profit,
		})
	}
}
