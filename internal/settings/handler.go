package settings

import (
	"strings"

	"finance-backend/internal/database"
	"finance-backend/internal/finance"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateOrganizationRequest struct {
	Name    *string `json:"name"`
	INN     *string `json:"inn"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
}

type UpdateAppSettingsRequest struct {
	Currency   *string         `json:"currency"`
	DateFormat *string         `json:"dateFormat"`
	Language   *string         `json:"language"`
	TaxPercent *finance.Amount `json:"taxPercent"`
	Theme      *string         `json:"theme"`
}

// GET /api/organization
// Returns the single profile row, creating it empty on first access.
func GetOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var org models.Organization
		if err := database.DB.FirstOrCreate(&org, models.Organization{ID: 1}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load organization")
		}
		return c.JSON(org)
	}
}

// PUT /api/organization
func UpdateOrganizationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var org models.Organization
		if err := database.DB.FirstOrCreate(&org, models.Organization{ID: 1}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load organization")
		}

		var body UpdateOrganizationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			org.Name = name
		}
		if body.INN != nil {
			org.INN = *body.INN
		}
		if body.Address != nil {
			org.Address = *body.Address
		}
		if body.Phone != nil {
			org.Phone = *body.Phone
		}
		if body.Email != nil {
			org.Email = *body.Email
		}
		if body.Website != nil {
			org.Website = *body.Website
		}

		if err := database.DB.Save(&org).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update organization")
		}
		return c.JSON(org)
	}
}

// GET /api/settings
func GetAppSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := load()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}
		return c.JSON(settings)
	}
}

// PUT /api/settings
func UpdateAppSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := load()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		var body UpdateAppSettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Currency != nil {
			settings.Currency = *body.Currency
		}
		if body.DateFormat != nil {
			settings.DateFormat = *body.DateFormat
		}
		if body.Language != nil {
			settings.Language = *body.Language
		}
		if body.TaxPercent != nil {
			percent := body.TaxPercent.Float()
			if percent < 0 || percent > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "Tax percent must be between 0 and 100")
			}
			settings.TaxPercent = percent
		}
		if body.Theme != nil {
			settings.Theme = *body.Theme
		}

		if err := database.DB.Save(&settings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
		}
		return c.JSON(settings)
	}
}

func load() (models.AppSettings, error) {
	settings := models.AppSettings{ID: 1, Currency: "USD", DateFormat: "DD.MM.YYYY", Language: "en", Theme: "light"}
	err := database.DB.FirstOrCreate(&settings, models.AppSettings{ID: 1}).Error
	return settings, err
}
