package models

import "time"

// Transaction is a single income or expense record. Kind scopes every
// query: the income and expense views never see each other's rows.
type Transaction struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	Kind       string    `gorm:"size:16;index;not null"` // income / expense
	Label      string    `gorm:"size:64;not null"`       // source for income, category for expense
	Amount     float64   `gorm:"not null"`
	Icon       string    `gorm:"size:16"`
	OccurredAt time.Time `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
