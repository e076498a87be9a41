package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Account represents the database model for a bettor's account. The
// trades column holds the ids of the account's trades.
type Account struct {
	ID            string                      `gorm:"primaryKey;size:128"`
	WalletBalance decimal.Decimal             `gorm:"type:numeric(20,2);not null;default:0"`
	Trades        datatypes.JSONSlice[string] `gorm:"column:trades"`
	CreatedAt     time.Time                   `gorm:"not null"`
	UpdatedAt     time.Time                   `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "users"
}
