package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wager-profile/mocks/port/core"
)

func TestNewDeposit(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid deposit", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		deposit, err := NewDeposit("dep-1", "user-1", "key-1", decimal.RequireFromString("50"), mockTime)

		require.NoError(t, err)
		assert.Equal(t, DepositStatusPending, deposit.Status)
		assert.Equal(t, now, deposit.CreatedAt)
		assert.Nil(t, deposit.ProcessedAt)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			userID   string
			key      string
			amount   decimal.Decimal
			expected error
		}{
			{"Empty user", "", "key", decimal.NewFromInt(1), errs.ErrInvalidUserID},
			{"Empty key", "user-1", "", decimal.NewFromInt(1), errs.ErrInvalidRequest},
			{"Zero amount", "user-1", "key", decimal.Zero, errs.ErrInvalidAmount},
			{"Negative amount", "user-1", "key", decimal.NewFromInt(-5), errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockTime := coremocks.NewMockTimeProvider(t)

				_, err := NewDeposit("dep-1", tc.userID, tc.key, tc.amount, mockTime)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}

func TestDepositMarkAsProcessedAndEvent(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	processedAt := createdAt.Add(time.Second)

	deposit := &Deposit{
		ID:             "dep-1",
		UserID:         "user-1",
		IdempotencyKey: "key-1",
		Amount:         decimal.RequireFromString("50"),
		Status:         DepositStatusPending,
		CreatedAt:      createdAt,
	}

	event := NewFundsAdded(deposit)
	assert.Equal(t, createdAt, event.OccurredAt)

	deposit.MarkAsProcessed(processedAt, decimal.RequireFromString("150"))

	assert.Equal(t, DepositStatusCompleted, deposit.Status)
	require.NotNil(t, deposit.ProcessedAt)

	event = NewFundsAdded(deposit)
	assert.Equal(t, FundsAdded{
		DepositID:      "dep-1",
		UserID:         "user-1",
		IdempotencyKey: "key-1",
		Amount:         "50.00",
		NewBalance:     "150.00",
		OccurredAt:     processedAt,
	}, event)
}
