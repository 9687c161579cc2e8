package calculator

import (
	"finance-backend/internal/finance"

	"github.com/gofiber/fiber/v2"
)

type TransferResponse struct {
	TransferAmount float64 `json:"transfer_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// GET /api/calculator/transfer?amount=&tax_percent=
// Computes the gross transfer that leaves the requested amount after tax:
// transfer = amount / (1 - p/100).
func TransferHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		amount := finance.Num(c.Query("amount"))
		percent := finance.Num(c.Query("tax_percent"))

		if amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
		}
		if percent <= 0 || percent >= 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Tax percent must be between 0 and 100")
		}

		transfer := amount / (1 - percent/100)
		return c.JSON(TransferResponse{
			TransferAmount: transfer,
			TaxAmount:      transfer - amount,
			FinalAmount:    amount,
		})
	}
}
