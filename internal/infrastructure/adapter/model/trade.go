package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents the database model for a placed bet
type Trade struct {
	ID             string          `gorm:"primaryKey;size:128"`
	Amount         decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	ExpectedPayout decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	EventID        string          `gorm:"size:128;not null"`
	SelectedTeam   string          `gorm:"size:16;not null"`
	Status         string          `gorm:"size:16;not null"`
	UserID         string          `gorm:"size:128;not null;index"`
}

// TableName specifies the table name for Trade
func (Trade) TableName() string {
	return "trades"
}
