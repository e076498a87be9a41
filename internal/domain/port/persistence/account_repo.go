package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// AccountRepository defines methods to read and provision account records
type AccountRepository interface {
	// GetByID retrieves an account by identity ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the identity
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// Create provisions a new account
	// Accounts are normally provisioned externally; used for seeding
	//
	// Possible errors:
	// - ErrConstraintViolation: If an account with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error
}
