package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamSide identifies which team of an event a trade backs
type TeamSide string

const (
	// TeamSideHome backs the home team
	TeamSideHome TeamSide = "home"
	// TeamSideVisitor backs the visiting team
	TeamSideVisitor TeamSide = "visitor"
)

// TradeStatus is the settlement status of a trade. Values outside the
// known set are kept verbatim.
type TradeStatus string

const (
	TradeStatusPending TradeStatus = "pending"
	TradeStatusWon     TradeStatus = "won"
	TradeStatusLost    TradeStatus = "lost"
)

// Trade is a single wager placed by a user against an event outcome.
// It is never written by this service.
type Trade struct {
	ID             string
	Amount         decimal.Decimal
	ExpectedPayout decimal.Decimal
	CreatedAt      time.Time
	EventID        string
	SelectedTeam   TeamSide
	Status         TradeStatus
	UserID         string
}
