package models

import "time"

type Client struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:150;not null"`
	Organization  string `gorm:"size:150"`
	ActivityField string `gorm:"size:150"`
	ContactName   string `gorm:"size:100"`
	Phone         string `gorm:"size:50;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
