package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"InvalidUserID", ErrInvalidUserID, CodeInvalidUserID},
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated},
		{"InvalidToken", ErrInvalidToken, CodeUnauthenticated},
		{"DuplicateDeposit", ErrDuplicateDeposit, CodeDuplicateDeposit},
		{"SubmitInFlight", ErrSubmitInFlight, CodeSubmitInFlight},
		{"DialogNotOpen", ErrDialogNotOpen, CodeDialogNotOpen},
		{"AccountNotFound", ErrAccountNotFound, CodeAccountNotFound},
		{"TradeNotFound", ErrTradeNotFound, CodeTradeNotFound},
		{"EventNotFound", ErrEventNotFound, CodeEventNotFound},
		{"InvalidRequest", ErrInvalidRequest, CodeInvalidRequest},
		{"ConstraintViolation", ErrConstraintViolation, CodeConstraintViolate},
		{"DatabaseConnection", ErrDatabaseConnection, CodeDatabaseConnection},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAmount), CodeInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("user-1", 7, "trades", ErrDatabaseConnection)

	assert.ErrorIs(t, err, ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "generation 7")

	var loadErr *LoadError
	if assert.ErrorAs(t, err, &loadErr) {
		fields := loadErr.LogFields()
		assert.Equal(t, "load_error", fields["error_type"])
		assert.Equal(t, "trades", fields["stage"])
		assert.Equal(t, CodeDatabaseConnection, fields["error_code"])
	}
}

func TestFundsError(t *testing.T) {
	err := NewFundsError("user-1", "50.00", "key-1", ErrAccountNotFound)

	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, "add funds failed for user user-1 (amount: 50.00): account not found", err.Error())

	var fundsErr *FundsError
	if assert.ErrorAs(t, err, &fundsErr) {
		fields := fundsErr.LogFields()
		assert.Equal(t, "key-1", fields["idempotency_key"])
		assert.Equal(t, CodeAccountNotFound, fields["error_code"])
	}
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", ErrTradeNotFound)))
	assert.False(t, IsNotFoundError(ErrInternalServer))

	assert.True(t, IsUnauthenticatedError(ErrInvalidToken))
	assert.False(t, IsUnauthenticatedError(ErrInvalidAmount))
}
