package models

import "time"

type PayoutType string

const (
	PayoutTypePercent PayoutType = "percent" // amount x employee.percent / 100, recomputed
	PayoutTypeFixed   PayoutType = "fixed"   // user-set constant
)

// EmployeeShare is one entry of an income record's employees list.
// Stored inside the incomes table as a JSON column.
type EmployeeShare struct {
	EmployeeID   uint       `json:"employeeId"`
	PayoutType   PayoutType `json:"payoutType"`
	PayoutAmount float64    `json:"payoutAmount"`
}

type Income struct {
	ID            uint      `gorm:"primaryKey"`
	Date          time.Time `gorm:"index;not null"`
	Title         string    `gorm:"size:255;not null"`
	ClientID      *uint     `gorm:"index"`
	Client        *Client
	Amount        float64
	TaxPercent    float64
	TaxAmount     float64
	NpAmount      float64
	InternalCosts float64
	// Employees is nil for records written before the multi-employee schema.
	// Those carry the legacy columns below instead; finance.MigrateIncome
	// normalizes on read. The legacy columns are never rewritten.
	Employees []EmployeeShare `gorm:"serializer:json"`
	Profit    float64
	Comment   string `gorm:"size:1000"`

	LegacyEmployeeID *uint    `gorm:"column:employee_id"`
	LegacyPayoutType *string  `gorm:"column:employee_payout_type;size:20"`
	LegacyPayouts    *float64 `gorm:"column:employee_payouts"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
