package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// TradeRepository reads trade records
type TradeRepository interface {
	// GetByID retrieves a trade by ID
	//
	// Possible errors:
	// - ErrTradeNotFound: If the trade doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Trade, error)

	// Create stores a trade record; used for seeding only
	Create(ctx context.Context, trade *entity.Trade) error
}

// EventRepository reads event records
type EventRepository interface {
	// GetByID retrieves an event by ID
	//
	// Possible errors:
	// - ErrEventNotFound: If the event doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Event, error)

	// Create stores an event record; used for seeding only
	Create(ctx context.Context, event *entity.Event) error
}
