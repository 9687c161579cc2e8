package employee

import (
	"strings"

	"finance-backend/internal/database"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeResponse struct {
	ID       uint    `json:"id"`
	FullName string  `json:"fullName"`
	Position string  `json:"position"`
	Percent  float64 `json:"percent"`
}

type CreateEmployeeRequest struct {
	FullName string         `json:"fullName"`
	Position string         `json:"position"`
	Percent  finance.Amount `json:"percent"`
}

type UpdateEmployeeRequest struct {
	FullName *string         `json:"fullName"`
	Position *string         `json:"position"`
	Percent  *finance.Amount `json:"percent"`
}

func toResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		FullName: e.FullName,
		Position: e.Position,
		Percent:  e.Percent,
	}
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.Employee
		if err := database.DB.Order("full_name asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list employees")
		}

		res := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			res = append(res, toResponse(e))
		}
		return c.JSON(res)
	}
}

// POST /api/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if body.FullName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Full name is required")
		}
		percent := body.Percent.Float()
		if percent < 0 || percent > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Percent must be between 0 and 100")
		}

		e := models.Employee{
			FullName: body.FullName,
			Position: body.Position,
			Percent:  percent,
		}
		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create employee")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(e))
	}
}

// PUT /api/employees/:id
// Changing the default percent does not rewrite existing income records;
// percent payouts are refreshed only when a record itself is edited.
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.Employee
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.FullName != nil {
			name := strings.TrimSpace(*body.FullName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Full name cannot be empty")
			}
			e.FullName = name
		}
		if body.Position != nil {
			e.Position = *body.Position
		}
		if body.Percent != nil {
			percent := body.Percent.Float()
			if percent < 0 || percent > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "Percent must be between 0 and 100")
			}
			e.Percent = percent
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update employee")
		}

		return c.JSON(toResponse(e))
	}
}

// DELETE /api/employees/:id
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Employee{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete employee")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DefaultPercents loads every employee's default share keyed by id, the shape
// the payout allocator wants.
func DefaultPercents() (map[uint]float64, error) {
	var employees []models.Employee
	if err := database.DB.Find(&employees).Error; err != nil {
		return nil, err
	}
	percents := make(map[uint]float64, len(employees))
	for _, e := range employees {
		percents[e.ID] = e.Percent
	}
	return percents, nil
}
