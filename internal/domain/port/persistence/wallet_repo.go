package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// WalletRepository performs balance mutations and keeps the deposit ledger
type WalletRepository interface {
	// Credit atomically adds the deposit amount to the account balance and
	// records the deposit in the ledger, both in one database transaction.
	// The returned deposit carries the persisted result balance.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDuplicateDeposit: If a deposit with the same idempotency key exists
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, deposit *entity.Deposit) (*entity.Deposit, error)

	// GetByIdempotencyKey retrieves a previously recorded deposit
	//
	// Possible errors:
	// - ErrNotFound: If no deposit carries the key
	// - ErrDatabaseConnection: If database connection fails
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Deposit, error)
}
