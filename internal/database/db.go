package database

import (
	"log"

	"finance-backend/internal/config"
	"finance-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	// Incomes written before the multi-employee schema carry a flat
	// employee_id / employee_payout_type / employee_payouts triple and a NULL
	// employees column. AutoMigrate keeps those columns; they are read through
	// finance.MigrateIncome and rewritten only when the record is explicitly
	// saved in the new shape.
	if DB.Migrator().HasTable(&models.Income{}) {
		if !DB.Migrator().HasColumn(&models.Income{}, "employees") {
			log.Println("Adding incomes.employees column, legacy single-employee columns are preserved")
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Employee{},
		&models.Income{},
		&models.ExpenseCategory{},
		&models.VariableExpense{},
		&models.FixedExpense{},
		&models.Organization{},
		&models.AppSettings{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migration complete.")
}
