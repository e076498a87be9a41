package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// ProfileLoader assembles the profile snapshot of an identity
type ProfileLoader interface {
	// Load fetches the account, its trades and their events.
	// A nil identity or a missing account yields an empty snapshot.
	// Missing trades are dropped and missing events are tolerated;
	// any other fetch error aborts the load.
	Load(ctx context.Context, identity *entity.Identity) (*entity.ProfileSnapshot, error)
}

// FundsUseCase credits an identity's wallet
type FundsUseCase interface {
	// AddFunds credits amount and returns the persisted balance.
	// Replaying an idempotency key returns the original result.
	AddFunds(ctx context.Context, identity *entity.Identity, amount decimal.Decimal, idempotencyKey string) (decimal.Decimal, error)
}

// LogoResolver resolves team logos, returning nil when no asset exists
type LogoResolver interface {
	Resolve(ctx context.Context, abbreviation, teamName string) *entity.Logo
}
