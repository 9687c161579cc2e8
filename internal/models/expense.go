package models

import "time"

type ExpenseCategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariableExpense is a one-off expense tied to a date.
type VariableExpense struct {
	ID         uint      `gorm:"primaryKey"`
	Date       time.Time `gorm:"index;not null"`
	Title      string    `gorm:"size:255;not null"`
	CategoryID *uint     `gorm:"index"`
	Category   *ExpenseCategory
	Amount     float64
	Comment    string `gorm:"size:1000"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FixedExpense is a recurring obligation without a transaction date.
// Summaries always count fixed expenses in full regardless of period filters.
type FixedExpense struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Amount    float64
	Period    string `gorm:"size:100"` // free-form, e.g. "monthly"
	CreatedAt time.Time
	UpdatedAt time.Time
}
