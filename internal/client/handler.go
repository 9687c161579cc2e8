package client

import (
	"strings"

	"finance-backend/internal/database"
	"finance-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ClientResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Organization  string `json:"organization"`
	ActivityField string `json:"activityField"`
	ContactName   string `json:"contactName"`
	Phone         string `json:"phone"`
}

type CreateClientRequest struct {
	Name          string `json:"name"`
	Organization  string `json:"organization"`
	ActivityField string `json:"activityField"`
	ContactName   string `json:"contactName"`
	Phone         string `json:"phone"`
}

type UpdateClientRequest struct {
	Name          *string `json:"name"`
	Organization  *string `json:"organization"`
	ActivityField *string `json:"activityField"`
	ContactName   *string `json:"contactName"`
	Phone         *string `json:"phone"`
}

func toResponse(c models.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Organization:  c.Organization,
		ActivityField: c.ActivityField,
		ContactName:   c.ContactName,
		Phone:         c.Phone,
	}
}

// GET /api/clients
func ListClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var clients []models.Client
		if err := database.DB.Order("name asc").Find(&clients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list clients")
		}

		res := make([]ClientResponse, 0, len(clients))
		for _, cl := range clients {
			res = append(res, toResponse(cl))
		}
		return c.JSON(res)
	}
}

// POST /api/clients
func CreateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Phone = strings.TrimSpace(body.Phone)
		if body.Name == "" || body.Phone == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and phone are required")
		}

		cl := models.Client{
			Name:          body.Name,
			Organization:  body.Organization,
			ActivityField: body.ActivityField,
			ContactName:   body.ContactName,
			Phone:         body.Phone,
		}
		if err := database.DB.Create(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create client")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(cl))
	}
}

// PUT /api/clients/:id
func UpdateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cl models.Client
		if err := database.DB.First(&cl, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}

		var body UpdateClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cl.Name = name
		}
		if body.Organization != nil {
			cl.Organization = *body.Organization
		}
		if body.ActivityField != nil {
			cl.ActivityField = *body.ActivityField
		}
		if body.ContactName != nil {
			cl.ContactName = *body.ContactName
		}
		if body.Phone != nil {
			phone := strings.TrimSpace(*body.Phone)
			if phone == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Phone cannot be empty")
			}
			cl.Phone = phone
		}

		if err := database.DB.Save(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update client")
		}

		return c.JSON(toResponse(cl))
	}
}

// DELETE /api/clients/:id
// No cascade: historical income records keep their clientId and simply
// resolve to a placeholder in reports.
func DeleteClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete client")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
