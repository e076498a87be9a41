package messaging

import (
	"context"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// FundsPublisher announces completed deposits to other services
type FundsPublisher interface {
	PublishFundsAdded(ctx context.Context, event entity.FundsAdded) error
	Close() error
}
