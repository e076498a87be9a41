package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/model"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors errorHandler
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
		errors: newErrorHandler(logger, database.EntityTypeAccount),
	}
}

func (r *AccountRepository) modelToEntity(m *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(m.ID, m.WalletBalance, []string(m.Trades), m.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create account entity", map[string]any{
			"account_id": m.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create account entity: %s", errs.ErrInternalServer, err.Error())
	}
	account.UpdatedAt = m.UpdatedAt
	return account, nil
}

// GetByID retrieves an account by identity ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var m model.Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.errors.handle("getting account", err, id)
	}

	account, err := r.modelToEntity(&m)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Account retrieved", map[string]any{
		"account_id": id,
		"balance":    account.WalletBalance.StringFixed(entity.MoneyDecimalPlaces),
		"trades":     len(account.TradeIDs),
	})
	return account, nil
}

// Create provisions a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	tradeIDs := account.TradeIDs
	if tradeIDs == nil {
		tradeIDs = []string{}
	}

	m := model.Account{
		ID:            account.ID,
		WalletBalance: account.WalletBalance,
		Trades:        datatypes.NewJSONSlice(tradeIDs),
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating account", err, account.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"account_id": account.ID,
		"balance":    account.WalletBalance.StringFixed(entity.MoneyDecimalPlaces),
	})
	return nil
}
