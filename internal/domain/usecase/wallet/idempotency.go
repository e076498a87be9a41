package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/persistence"
)

// IdempotencyHandler detects replayed add-funds requests
type IdempotencyHandler struct {
	walletRepo persistence.WalletRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(walletRepo persistence.WalletRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		walletRepo: walletRepo,
	}
}

// CheckIdempotency looks up a deposit already recorded under key.
// Returns the deposit, whether it was found, and any error.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	userID string,
	key string,
) (*entity.Deposit, bool, error) {
	deposit, err := h.walletRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	// A key belongs to the account that first used it
	if deposit.UserID != userID {
		return nil, true, errs.ErrDuplicateDeposit
	}

	return deposit, true, nil
}
