package migration

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/model"
)

// Demo principals seeded for local development
const (
	DemoUserID      = "demo-user-1"
	DemoEmptyUserID = "demo-user-2"
)

// DemoSeeder inserts a small, stable data set for local development.
// Existing rows are left untouched.
type DemoSeeder struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewDemoSeeder creates a demo data seeder
func NewDemoSeeder(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *DemoSeeder {
	return &DemoSeeder{db: db, logger: logger, timeProvider: timeProvider}
}

// Seed inserts the demo accounts, events and trades
func (s *DemoSeeder) Seed(ctx context.Context) error {
	now := s.timeProvider.Now().UTC().Truncate(time.Minute)
	tipoff := now.Add(48 * time.Hour)

	events := []model.Event{
		{
			ID:          "evt-lal-bos",
			HomeTeam:    datatypes.NewJSONType(model.TeamDocument{FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East"}),
			VisitorTeam: datatypes.NewJSONType(model.TeamDocument{FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West"}),
		},
		{
			ID:          "evt-gsw-den",
			HomeTeam:    datatypes.NewJSONType(model.TeamDocument{FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Conference: "West"}),
			VisitorTeam: datatypes.NewJSONType(model.TeamDocument{FullName: "Golden State Warriors", Abbreviation: "GSW", City: "San Francisco", Conference: "West"}),
			StartsAt:    &tipoff,
		},
	}

	trades := []model.Trade{
		demoTrade("trd-1001", "25.00", "47.50", now.Add(-72*time.Hour), "evt-lal-bos", "home", "won"),
		demoTrade("trd-1002", "10.00", "21.00", now.Add(-48*time.Hour), "evt-lal-bos", "visitor", "lost"),
		// event missing on purpose: rendered as an unknown team
		demoTrade("trd-1003", "5.00", "9.00", now.Add(-24*time.Hour), "evt-archived", "home", "won"),
		demoTrade("trd-1004", "40.00", "76.00", now.Add(-1*time.Hour), "evt-gsw-den", "visitor", "pending"),
	}

	accounts := []model.Account{
		{
			ID:            DemoUserID,
			WalletBalance: decimal.RequireFromString("100.00"),
			// trd-0999 was never persisted and is skipped when loading
			Trades:    datatypes.NewJSONSlice([]string{"trd-1001", "trd-1002", "trd-1003", "trd-1004", "trd-0999"}),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            DemoEmptyUserID,
			WalletBalance: decimal.Zero,
			Trades:        datatypes.NewJSONSlice([]string{}),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ignoreExisting := tx.Clauses(clause.OnConflict{DoNothing: true})
		if err := ignoreExisting.Create(&events).Error; err != nil {
			return err
		}
		if err := ignoreExisting.Create(&trades).Error; err != nil {
			return err
		}
		return ignoreExisting.Create(&accounts).Error
	})
	if err != nil {
		s.logger.Error("Failed to seed demo data", map[string]any{"error": err.Error()})
		return err
	}

	s.logger.Info("Demo data seeded", map[string]any{
		"accounts": len(accounts),
		"events":   len(events),
		"trades":   len(trades),
	})
	return nil
}

func demoTrade(id, amount, payout string, createdAt time.Time, eventID, side, status string) model.Trade {
	return model.Trade{
		ID:             id,
		Amount:         decimal.RequireFromString(amount),
		ExpectedPayout: decimal.RequireFromString(payout),
		CreatedAt:      createdAt,
		EventID:        eventID,
		SelectedTeam:   side,
		Status:         status,
		UserID:         DemoUserID,
	}
}
