package audit

import (
	"strconv"

	"finance-backend/internal/database"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=income&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if l, err := strconv.Atoi(c.Query("limit", "50")); err == nil && l > 0 && l <= 500 {
			limit = l
		}

		q := database.DB.Model(&models.AuditLog{}).Order("created_at desc").Limit(limit)
		if entityType := c.Query("entity_type"); entityType != "" {
			q = q.Where("entity_type = ?", entityType)
		}

		var logs []models.AuditLog
		if err := q.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		return c.JSON(logs)
	}
}
