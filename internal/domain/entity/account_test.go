package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid account", func(t *testing.T) {
		account, err := NewAccount("user-1", decimal.NewFromInt(100), []string{"t1"}, now)

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.ID)
		assert.True(t, account.WalletBalance.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, []string{"t1"}, account.TradeIDs)
		assert.Equal(t, now, account.CreatedAt)
		assert.Equal(t, now, account.UpdatedAt)
	})

	t.Run("Empty ID", func(t *testing.T) {
		_, err := NewAccount("", decimal.Zero, nil, now)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Negative balance", func(t *testing.T) {
		_, err := NewAccount("user-1", decimal.NewFromInt(-1), nil, now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAccountUniqueTradeIDs(t *testing.T) {
	account := &Account{TradeIDs: []string{"t2", "t1", "", "t2", "t3", "t1"}}

	assert.Equal(t, []string{"t2", "t1", "t3"}, account.UniqueTradeIDs())
	assert.Empty(t, (&Account{}).UniqueTradeIDs())
}
