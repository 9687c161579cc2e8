package expense

import (
	"fmt"
	"strings"
	"time"

	"finance-backend/internal/audit"
	"finance-backend/internal/auth"
	"finance-backend/internal/database"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ExpenseCategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateExpenseCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateExpenseCategoryRequest struct {
	Name *string `json:"name"`
}

type VariableExpenseResponse struct {
	ID         uint    `json:"id"`
	Date       string  `json:"date"`
	Title      string  `json:"title"`
	CategoryID *uint   `json:"categoryId"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Comment    string  `json:"comment"`
}

type CreateVariableExpenseRequest struct {
	Date       string         `json:"date"` // "2024-06-15"
	Title      string         `json:"title"`
	CategoryID *uint          `json:"categoryId"`
	Amount     finance.Amount `json:"amount"`
	Comment    string         `json:"comment"`
}

type UpdateVariableExpenseRequest struct {
	Date       *string         `json:"date"`
	Title      *string         `json:"title"`
	CategoryID *uint           `json:"categoryId"`
	Amount     *finance.Amount `json:"amount"`
	Comment    *string         `json:"comment"`
}

type FixedExpenseResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Period string  `json:"period"`
}

type CreateFixedExpenseRequest struct {
	Name   string         `json:"name"`
	Amount finance.Amount `json:"amount"`
	Period string         `json:"period"`
}

type UpdateFixedExpenseRequest struct {
	Name   *string         `json:"name"`
	Amount *finance.Amount `json:"amount"`
	Period *string         `json:"period"`
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

func categoryName(id *uint) string {
	if id == nil {
		return ""
	}
	var cat models.ExpenseCategory
	if err := database.DB.First(&cat, "id = ?", *id).Error; err != nil {
		return ""
	}
	return cat.Name
}

func toVariableResponse(e models.VariableExpense) VariableExpenseResponse {
	return VariableExpenseResponse{
		ID:         e.ID,
		Date:       e.Date.Format(finance.DateLayout),
		Title:      e.Title,
		CategoryID: e.CategoryID,
		Category:   categoryName(e.CategoryID),
		Amount:     e.Amount,
		Comment:    e.Comment,
	}
}

// -------------------------
// Expense category CRUD
// -------------------------

// GET /api/expense-categories
func ListExpenseCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cats []models.ExpenseCategory
		if err := database.DB.Order("name asc").Find(&cats).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list categories")
		}

		res := make([]ExpenseCategoryResponse, 0, len(cats))
		for _, cat := range cats {
			res = append(res, ExpenseCategoryResponse{ID: cat.ID, Name: cat.Name})
		}
		return c.JSON(res)
	}
}

// POST /api/expense-categories
func CreateExpenseCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		cat := models.ExpenseCategory{Name: body.Name}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create category")
		}

		return c.Status(fiber.StatusCreated).JSON(ExpenseCategoryResponse{ID: cat.ID, Name: cat.Name})
	}
}

// PUT /api/expense-categories/:id
func UpdateExpenseCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.ExpenseCategory
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}

		var body UpdateExpenseCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cat.Name = name
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update category")
		}

		return c.JSON(ExpenseCategoryResponse{ID: cat.ID, Name: cat.Name})
	}
}

// DELETE /api/expense-categories/:id
func DeleteExpenseCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.ExpenseCategory{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete category")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// -------------------------
// Variable expense CRUD
// -------------------------

// GET /api/variable-expenses?from=...&to=...&category_id=...
func ListVariableExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var expenses []models.VariableExpense
		if err := database.DB.Order("date desc").Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list expenses")
		}

		from := c.Query("from")
		to := c.Query("to")
		categoryID := uint(finance.Num(c.Query("category_id")))

		res := make([]VariableExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			if (from != "" || to != "") && !finance.IsWithinRange(e.Date.Format(finance.DateLayout), from, to) {
				continue
			}
			if categoryID != 0 && (e.CategoryID == nil || *e.CategoryID != categoryID) {
				continue
			}
			res = append(res, toVariableResponse(e))
		}
		return c.JSON(res)
	}
}

// POST /api/variable-expenses
func CreateVariableExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateVariableExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title is required")
		}
		d, err := time.Parse(finance.DateLayout, body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		e := models.VariableExpense{
			Date:       d,
			Title:      body.Title,
			CategoryID: body.CategoryID,
			Amount:     body.Amount.Float(),
			Comment:    body.Comment,
		}
		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create expense")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variable_expense",
			EntityID:    e.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Expense added: %s - %.2f", e.Title, e.Amount),
			After:       toVariableResponse(e),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toVariableResponse(e))
	}
}

// PUT /api/variable-expenses/:id
func UpdateVariableExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.VariableExpense
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}
		before := toVariableResponse(e)

		var body UpdateVariableExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Date != nil {
			d, err := time.Parse(finance.DateLayout, *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			e.Date = d
		}
		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			e.Title = title
		}
		if body.CategoryID != nil {
			e.CategoryID = body.CategoryID
		}
		if body.Amount != nil {
			e.Amount = body.Amount.Float()
		}
		if body.Comment != nil {
			e.Comment = *body.Comment
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update expense")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variable_expense",
			EntityID:    e.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Expense updated: %s", e.Title),
			Before:      before,
			After:       toVariableResponse(e),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.JSON(toVariableResponse(e))
	}
}

// DELETE /api/variable-expenses/:id
func DeleteVariableExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.VariableExpense
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		if err := database.DB.Delete(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete expense")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variable_expense",
			EntityID:    e.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Expense deleted: %s", e.Title),
			Before:      toVariableResponse(e),
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// -------------------------
// Fixed expense CRUD
// -------------------------

// GET /api/fixed-expenses
func ListFixedExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var expenses []models.FixedExpense
		if err := database.DB.Order("name asc").Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list fixed expenses")
		}

		res := make([]FixedExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			res = append(res, FixedExpenseResponse{ID: e.ID, Name: e.Name, Amount: e.Amount, Period: e.Period})
		}
		return c.JSON(res)
	}
}

// POST /api/fixed-expenses
func CreateFixedExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFixedExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		e := models.FixedExpense{Name: body.Name, Amount: body.Amount.Float(), Period: body.Period}
		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create fixed expense")
		}

		userID, userName := getUserInfo(c)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "fixed_expense",
			EntityID:    e.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Fixed expense added: %s - %.2f", e.Name, e.Amount),
			After:       FixedExpenseResponse{ID: e.ID, Name: e.Name, Amount: e.Amount, Period: e.Period},
		}); logErr != nil {
			fmt.Printf("Could not write audit log: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(FixedExpenseResponse{ID: e.ID, Name: e.Name, Amount: e.Amount, Period: e.Period})
	}
}

// PUT /api/fixed-expenses/:id
func UpdateFixedExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.FixedExpense
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Fixed expense not found")
		}

		var body UpdateFixedExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			e.Name = name
		}
		if body.Amount != nil {
			e.Amount = body.Amount.Float()
		}
		if body.Period != nil {
			e.Period = *body.Period
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update fixed expense")
		}

		return c.JSON(FixedExpenseResponse{ID: e.ID, Name: e.Name, Amount: e.Amount, Period: e.Period})
	}
}

// DELETE /api/fixed-expenses/:id
func DeleteFixedExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.FixedExpense{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete fixed expense")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
