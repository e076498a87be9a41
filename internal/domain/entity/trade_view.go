package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UnknownTeamLabel is shown when a trade's event or team cannot be resolved
const UnknownTeamLabel = "Unknown Team"

// TradeView is a trade joined with its event. Event is nil when the
// referenced event does not exist.
type TradeView struct {
	Trade Trade
	Event *Event
}

// SelectedTeam returns the team the trade backs, if the event resolved
func (v TradeView) SelectedTeam() (Team, bool) {
	if v.Event == nil {
		return Team{}, false
	}
	return v.Event.Team(v.Trade.SelectedTeam)
}

// TeamLabel returns the backed team's full name or UnknownTeamLabel
func (v TradeView) TeamLabel() string {
	team, ok := v.SelectedTeam()
	if !ok || team.FullName == "" {
		return UnknownTeamLabel
	}
	return team.FullName
}

// Fixture returns the fixture summary and whether an event resolved
func (v TradeView) Fixture() (string, bool) {
	if v.Event == nil {
		return "", false
	}
	return v.Event.Fixture(), true
}

// SortTradeViewsByRecency orders views newest first. Ties keep their
// relative order.
func SortTradeViewsByRecency(views []TradeView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Trade.CreatedAt.After(views[j].Trade.CreatedAt)
	})
}

// Record is the win/loss tally of a trade history
type Record struct {
	Wins   int
	Losses int
}

// ComputeRecord counts won and lost trades. Any other status is ignored.
func ComputeRecord(views []TradeView) Record {
	var r Record
	for _, v := range views {
		switch v.Trade.Status {
		case TradeStatusWon:
			r.Wins++
		case TradeStatusLost:
			r.Losses++
		}
	}
	return r
}

// ProfileSnapshot is the result of one profile load cycle
type ProfileSnapshot struct {
	AccountFound bool
	Balance      decimal.Decimal
	Trades       []TradeView
}

// EmptyProfileSnapshot returns a snapshot with no trades and a zero balance
func EmptyProfileSnapshot() *ProfileSnapshot {
	return &ProfileSnapshot{
		Balance: decimal.Zero,
		Trades:  []TradeView{},
	}
}
