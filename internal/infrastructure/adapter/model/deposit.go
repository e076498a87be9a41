package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit represents one applied add-funds request
type Deposit struct {
	ID             string          `gorm:"primaryKey;size:64"`
	UserID         string          `gorm:"size:128;not null;index"`
	IdempotencyKey string          `gorm:"uniqueIndex;size:255;not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	ResultBalance  decimal.Decimal `gorm:"type:numeric(20,2)"`
	Status         string          `gorm:"size:32;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	ProcessedAt    *time.Time
}

// TableName specifies the table name for Deposit
func (Deposit) TableName() string {
	return "deposits"
}
