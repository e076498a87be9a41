package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	tport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// DepositStatus defines possible status values for a deposit
type DepositStatus string

// DepositStatus constants
const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusCompleted DepositStatus = "completed"
)

// Deposit is a ledger entry for one add-funds operation
type Deposit struct {
	ID             string          // Ledger entry ID
	UserID         string          // Account credited
	IdempotencyKey string          // Client-supplied key, unique across deposits
	Amount         decimal.Decimal // Amount credited, always positive
	ResultBalance  decimal.Decimal // Wallet balance right after the credit
	Status         DepositStatus
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

// NewDeposit creates a pending deposit with basic validation
func NewDeposit(
	id string,
	userID string,
	idempotencyKey string,
	amount decimal.Decimal,
	timeProvider tport.TimeProvider,
) (*Deposit, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if idempotencyKey == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	return &Deposit{
		ID:             id,
		UserID:         userID,
		IdempotencyKey: idempotencyKey,
		Amount:         amount,
		Status:         DepositStatusPending,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// MarkAsProcessed records the persisted balance after the credit
func (d *Deposit) MarkAsProcessed(processedAt time.Time, resultBalance decimal.Decimal) {
	d.ProcessedAt = &processedAt
	d.ResultBalance = resultBalance
	d.Status = DepositStatusCompleted
}

// FundsAdded is published after a deposit has been persisted
type FundsAdded struct {
	DepositID      string    `json:"depositId"`
	UserID         string    `json:"userId"`
	IdempotencyKey string    `json:"idempotencyKey"`
	Amount         string    `json:"amount"`
	NewBalance     string    `json:"newBalance"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewFundsAdded builds the event for a processed deposit
func NewFundsAdded(d *Deposit) FundsAdded {
	occurredAt := d.CreatedAt
	if d.ProcessedAt != nil {
		occurredAt = *d.ProcessedAt
	}
	return FundsAdded{
		DepositID:      d.ID,
		UserID:         d.UserID,
		IdempotencyKey: d.IdempotencyKey,
		Amount:         d.Amount.StringFixed(MoneyDecimalPlaces),
		NewBalance:     d.ResultBalance.StringFixed(MoneyDecimalPlaces),
		OccurredAt:     occurredAt,
	}
}
