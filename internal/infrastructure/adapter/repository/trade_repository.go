package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/model"
)

// TradeRepository implements the TradeRepository port using GORM
type TradeRepository struct {
	db     *gorm.DB
	errors errorHandler
}

// NewTradeRepository creates a new TradeRepository instance
func NewTradeRepository(db *gorm.DB, logger coreport.Logger) *TradeRepository {
	return &TradeRepository{
		db:     db,
		errors: newErrorHandler(logger, database.EntityTypeTrade),
	}
}

// GetByID retrieves a trade by ID
func (r *TradeRepository) GetByID(ctx context.Context, id string) (*entity.Trade, error) {
	var m model.Trade
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.errors.handle("getting trade", err, id)
	}

	return &entity.Trade{
		ID:             m.ID,
		Amount:         m.Amount,
		ExpectedPayout: m.ExpectedPayout,
		CreatedAt:      m.CreatedAt,
		EventID:        m.EventID,
		SelectedTeam:   entity.TeamSide(m.SelectedTeam),
		Status:         entity.TradeStatus(m.Status),
		UserID:         m.UserID,
	}, nil
}

// Create stores a trade record
func (r *TradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	m := model.Trade{
		ID:             trade.ID,
		Amount:         trade.Amount,
		ExpectedPayout: trade.ExpectedPayout,
		CreatedAt:      trade.CreatedAt,
		EventID:        trade.EventID,
		SelectedTeam:   string(trade.SelectedTeam),
		Status:         string(trade.Status),
		UserID:         trade.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating trade", err, trade.ID)
	}
	return nil
}

// EventRepository implements the EventRepository port using GORM
type EventRepository struct {
	db     *gorm.DB
	errors errorHandler
}

// NewEventRepository creates a new EventRepository instance
func NewEventRepository(db *gorm.DB, logger coreport.Logger) *EventRepository {
	return &EventRepository{
		db:     db,
		errors: newErrorHandler(logger, database.EntityTypeEvent),
	}
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var m model.Event
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.errors.handle("getting event", err, id)
	}

	return &entity.Event{
		ID:          m.ID,
		HomeTeam:    teamFromDocument(m.HomeTeam.Data()),
		VisitorTeam: teamFromDocument(m.VisitorTeam.Data()),
		StartsAt:    m.StartsAt,
	}, nil
}

// Create stores an event record
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	m := model.Event{
		ID:          event.ID,
		HomeTeam:    datatypes.NewJSONType(teamToDocument(event.HomeTeam)),
		VisitorTeam: datatypes.NewJSONType(teamToDocument(event.VisitorTeam)),
		StartsAt:    event.StartsAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errors.handle("creating event", err, event.ID)
	}
	return nil
}

func teamFromDocument(d model.TeamDocument) entity.Team {
	return entity.Team{
		FullName:     d.FullName,
		Abbreviation: d.Abbreviation,
		City:         d.City,
		Conference:   d.Conference,
	}
}

func teamToDocument(t entity.Team) model.TeamDocument {
	return model.TeamDocument{
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
	}
}
