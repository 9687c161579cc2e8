package main

import (
	"log"
	"strings"

	"finance-backend/internal/audit"
	"finance-backend/internal/auth"
	"finance-backend/internal/calculator"
	"finance-backend/internal/client"
	"finance-backend/internal/config"
	"finance-backend/internal/dashboard"
	"finance-backend/internal/database"
	"finance-backend/internal/employee"
	"finance-backend/internal/expense"
	"finance-backend/internal/income"
	"finance-backend/internal/report"
	"finance-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/verify", auth.VerifyHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Clients
	protected.Get("/clients", client.ListClientsHandler())
	protected.Post("/clients", client.CreateClientHandler())
	protected.Put("/clients/:id", client.UpdateClientHandler())
	protected.Delete("/clients/:id", client.DeleteClientHandler())

	// Employees
	protected.Get("/employees", employee.ListEmployeesHandler())
	protected.Post("/employees", employee.CreateEmployeeHandler())
	protected.Put("/employees/:id", employee.UpdateEmployeeHandler())
	protected.Delete("/employees/:id", employee.DeleteEmployeeHandler())

	// Incomes
	protected.Get("/incomes", income.ListIncomesHandler())
	protected.Post("/incomes", income.CreateIncomeHandler())
	protected.Post("/incomes/preview", income.PreviewIncomeHandler())
	protected.Get("/incomes/:id", income.GetIncomeHandler())
	protected.Put("/incomes/:id", income.UpdateIncomeHandler())
	protected.Delete("/incomes/:id", income.DeleteIncomeHandler())

	// Expense categories
	protected.Get("/expense-categories", expense.ListExpenseCategoriesHandler())
	protected.Post("/expense-categories", expense.CreateExpenseCategoryHandler())
	protected.Put("/expense-categories/:id", expense.UpdateExpenseCategoryHandler())
	protected.Delete("/expense-categories/:id", expense.DeleteExpenseCategoryHandler())

	// Variable expenses
	protected.Get("/expenses", expense.ListVariableExpensesHandler())
	protected.Post("/expenses", expense.CreateVariableExpenseHandler())
	protected.Put("/expenses/:id", expense.UpdateVariableExpenseHandler())
	protected.Delete("/expenses/:id", expense.DeleteVariableExpenseHandler())

	// Fixed expenses
	protected.Get("/fixed-expenses", expense.ListFixedExpensesHandler())
	protected.Post("/fixed-expenses", expense.CreateFixedExpenseHandler())
	protected.Put("/fixed-expenses/:id", expense.UpdateFixedExpenseHandler())
	protected.Delete("/fixed-expenses/:id", expense.DeleteFixedExpenseHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())
	protected.Get("/dashboard/top-clients", dashboard.TopClientsHandler())
	protected.Get("/dashboard/top-employees", dashboard.TopEmployeesHandler())
	protected.Get("/dashboard/charts", dashboard.ChartsHandler())

	// Reports
	protected.Get("/reports", report.GetReportHandler())
	protected.Get("/reports/export", report.ExportReportHandler())

	// Transfer calculator
	protected.Get("/calculator/transfer", calculator.TransferHandler())

	// Organization & settings
	protected.Get("/organization", settings.GetOrganizationHandler())
	protected.Put("/organization", settings.UpdateOrganizationHandler())
	protected.Get("/settings", settings.GetAppSettingsHandler())
	protected.Put("/settings", settings.UpdateAppSettingsHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
