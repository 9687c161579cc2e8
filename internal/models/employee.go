package models

import "time"

type Employee struct {
	ID        uint    `gorm:"primaryKey"`
	FullName  string  `gorm:"size:150;not null"`
	Position  string  `gorm:"size:100"`
	Percent   float64 `gorm:"not null;default:0"` // default share for percent payouts, 0-100
	CreatedAt time.Time
	UpdatedAt time.Time
}
