package calculator

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/calculator/transfer", TransferHandler())
	return app
}

func TestTransferHandler(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/calculator/transfer?amount=940&tax_percent=6", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body TransferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.InDelta(t, 1000.0, body.TransferAmount, 0.0001)
	assert.InDelta(t, 60.0, body.TaxAmount, 0.0001)
	assert.InDelta(t, 940.0, body.FinalAmount, 0.0001)
}

func TestTransferHandlerRejectsBadInput(t *testing.T) {
	app := newApp()

	cases := []string{
		"amount=0&tax_percent=6",
		"amount=-10&tax_percent=6",
		"amount=100&tax_percent=0",
		"amount=100&tax_percent=100",
		"amount=abc&tax_percent=6",
	}
	for _, qs := range cases {
		req := httptest.NewRequest("GET", "/calculator/transfer?"+qs, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, qs)
	}
}
