package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/model"
)

// WalletRepository credits wallet balances and keeps the deposit ledger
type WalletRepository struct {
	db            *gorm.DB
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	retryConfig   database.RetryConfig
	accountErrors errorHandler
	depositErrors errorHandler
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:            db,
		timeProvider:  timeProvider,
		logger:        logger,
		retryConfig:   database.DefaultRetryConfig(),
		accountErrors: newErrorHandler(logger, database.EntityTypeAccount),
		depositErrors: newErrorHandler(logger, database.EntityTypeDeposit),
	}
}

// Credit adds the deposit amount to the account balance with a single
// increment statement and records the deposit, in one transaction
func (r *WalletRepository) Credit(ctx context.Context, deposit *entity.Deposit) (*entity.Deposit, error) {
	r.logger.Debug("Crediting wallet", map[string]any{
		"user_id":         deposit.UserID,
		"amount":          deposit.Amount.String(),
		"idempotency_key": deposit.IdempotencyKey,
	})

	var credited entity.Deposit
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := r.timeProvider.Now()

			result := tx.Model(&model.Account{}).
				Where("id = ?", deposit.UserID).
				Updates(map[string]any{
					"wallet_balance": gorm.Expr("wallet_balance + ?", deposit.Amount),
					"updated_at":     now,
				})
			if result.Error != nil {
				return r.accountErrors.handle("crediting account", result.Error, deposit.UserID)
			}
			if result.RowsAffected == 0 {
				return errs.ErrAccountNotFound
			}

			var account model.Account
			if err := tx.Select("wallet_balance").First(&account, "id = ?", deposit.UserID).Error; err != nil {
				return r.accountErrors.handle("reading credited balance", err, deposit.UserID)
			}

			credited = *deposit
			credited.MarkAsProcessed(now, account.WalletBalance.Round(entity.MoneyDecimalPlaces))

			record := depositToModel(&credited)
			if err := tx.Create(&record).Error; err != nil {
				return r.depositErrors.handle("recording deposit", err, deposit.IdempotencyKey)
			}
			return nil
		})
	}, r.logger)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Wallet credited", map[string]any{
		"user_id":     credited.UserID,
		"deposit_id":  credited.ID,
		"amount":      credited.Amount.String(),
		"new_balance": credited.ResultBalance.StringFixed(entity.MoneyDecimalPlaces),
	})
	return &credited, nil
}

// GetByIdempotencyKey retrieves a previously recorded deposit
func (r *WalletRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Deposit, error) {
	var m model.Deposit
	err := r.db.WithContext(ctx).First(&m, "idempotency_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, r.depositErrors.handle("getting deposit", err, key)
	}
	return depositToEntity(&m), nil
}

func depositToModel(d *entity.Deposit) model.Deposit {
	return model.Deposit{
		ID:             d.ID,
		UserID:         d.UserID,
		IdempotencyKey: d.IdempotencyKey,
		Amount:         d.Amount,
		ResultBalance:  d.ResultBalance,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		ProcessedAt:    d.ProcessedAt,
	}
}

func depositToEntity(m *model.Deposit) *entity.Deposit {
	return &entity.Deposit{
		ID:             m.ID,
		UserID:         m.UserID,
		IdempotencyKey: m.IdempotencyKey,
		Amount:         m.Amount,
		ResultBalance:  m.ResultBalance,
		Status:         entity.DepositStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		ProcessedAt:    m.ProcessedAt,
	}
}
