package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
)

// Account represents the persisted wallet record of an identity
type Account struct {
	ID            string          // Same as the identity ID
	WalletBalance decimal.Decimal // USD, never negative
	TradeIDs      []string        // Trade records owned by this account, order irrelevant
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates a new account for the given identity ID
func NewAccount(id string, balance decimal.Decimal, tradeIDs []string, now time.Time) (*Account, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if balance.IsNegative() {
		return nil, errs.ErrInvalidAmount
	}

	return &Account{
		ID:            id,
		WalletBalance: balance,
		TradeIDs:      tradeIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// UniqueTradeIDs returns the account's trade IDs with duplicates and
// empty values removed, keeping first-seen order.
func (a *Account) UniqueTradeIDs() []string {
	seen := make(map[string]struct{}, len(a.TradeIDs))
	ids := make([]string, 0, len(a.TradeIDs))
	for _, id := range a.TradeIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
