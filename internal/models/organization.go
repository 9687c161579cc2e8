package models

import "time"

// Organization holds the single company profile. One row.
type Organization struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:150"`
	INN       string `gorm:"size:20"`
	Address   string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:100"`
	Website   string `gorm:"size:150"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppSettings holds application-wide defaults. One row.
type AppSettings struct {
	ID         uint    `gorm:"primaryKey"`
	Currency   string  `gorm:"size:10"`
	DateFormat string  `gorm:"size:20"`
	Language   string  `gorm:"size:10"`
	TaxPercent float64 // default tax percent for new income records
	Theme      string  `gorm:"size:20"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
