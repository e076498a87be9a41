package wallet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/persistence"
)

// Service is the balance update operation. Credits are applied by the
// database as an atomic increment and recorded in the deposit ledger.
type Service struct {
	walletRepo         persistence.WalletRepository
	idempotencyHandler *IdempotencyHandler
	publisher          messaging.FundsPublisher
	timeProvider       coreport.TimeProvider
	metrics            coreport.Metrics
	logger             coreport.Logger
}

// NewService creates a new wallet Service
func NewService(
	walletRepo persistence.WalletRepository,
	publisher messaging.FundsPublisher,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		walletRepo:         walletRepo,
		idempotencyHandler: NewIdempotencyHandler(walletRepo),
		publisher:          publisher,
		timeProvider:       timeProvider,
		metrics:            metrics,
		logger:             logger,
	}
}

// AddFunds credits amount to the identity's wallet and returns the
// persisted balance. An empty idempotency key gets a generated one.
func (s *Service) AddFunds(
	ctx context.Context,
	identity *entity.Identity,
	amount decimal.Decimal,
	idempotencyKey string,
) (decimal.Decimal, error) {
	if identity == nil {
		s.metrics.ObserveDeposit("rejected")
		return decimal.Zero, errs.ErrUnauthenticated
	}
	if !amount.IsPositive() {
		s.metrics.ObserveDeposit("rejected")
		return decimal.Zero, errs.NewFundsError(identity.ID, amount.String(), idempotencyKey, errs.ErrInvalidAmount)
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	// Replays return without taking any row locks
	existing, found, err := s.idempotencyHandler.CheckIdempotency(ctx, identity.ID, idempotencyKey)
	if err != nil {
		return decimal.Zero, s.fail(identity.ID, amount, idempotencyKey, err)
	}
	if found {
		return s.replay(existing), nil
	}

	deposit, err := entity.NewDeposit(uuid.NewString(), identity.ID, idempotencyKey, amount, s.timeProvider)
	if err != nil {
		return decimal.Zero, s.fail(identity.ID, amount, idempotencyKey, err)
	}

	credited, err := s.walletRepo.Credit(ctx, deposit)
	if err != nil {
		// Lost a race with a concurrent request carrying the same key
		if errors.Is(err, errs.ErrDuplicateDeposit) {
			existing, found, lookupErr := s.idempotencyHandler.CheckIdempotency(ctx, identity.ID, idempotencyKey)
			if lookupErr == nil && found {
				return s.replay(existing), nil
			}
		}
		return decimal.Zero, s.fail(identity.ID, amount, idempotencyKey, err)
	}

	s.metrics.ObserveDeposit("credited")
	s.logger.Info("Funds added", map[string]any{
		"user_id":         identity.ID,
		"deposit_id":      credited.ID,
		"amount":          credited.Amount.StringFixed(entity.MoneyDecimalPlaces),
		"new_balance":     credited.ResultBalance.StringFixed(entity.MoneyDecimalPlaces),
		"idempotency_key": idempotencyKey,
	})

	s.publish(ctx, credited)

	return credited.ResultBalance, nil
}

func (s *Service) replay(existing *entity.Deposit) decimal.Decimal {
	s.metrics.ObserveDeposit("replayed")
	s.logger.Info("Replayed add funds request", map[string]any{
		"user_id":         existing.UserID,
		"deposit_id":      existing.ID,
		"idempotency_key": existing.IdempotencyKey,
	})
	return existing.ResultBalance
}

// publish failures are logged only; the credit is already committed
func (s *Service) publish(ctx context.Context, deposit *entity.Deposit) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishFundsAdded(ctx, entity.NewFundsAdded(deposit)); err != nil {
		s.metrics.ObservePublish("failed")
		s.logger.Warn("Failed to publish funds added event", map[string]any{
			"user_id":    deposit.UserID,
			"deposit_id": deposit.ID,
			"error":      err.Error(),
		})
		return
	}
	s.metrics.ObservePublish("ok")
}

func (s *Service) fail(userID string, amount decimal.Decimal, key string, err error) error {
	s.metrics.ObserveDeposit("failed")
	fundsErr := &errs.FundsError{
		UserID:         userID,
		Amount:         amount.String(),
		IdempotencyKey: key,
		Err:            err,
	}
	s.logger.Error("Add funds failed", fundsErr.LogFields())
	return fundsErr
}
