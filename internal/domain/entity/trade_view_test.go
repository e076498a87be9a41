package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testEvent() *Event {
	return &Event{
		ID:          "evt-1",
		HomeTeam:    Team{FullName: "Boston Celtics", Abbreviation: "BOS"},
		VisitorTeam: Team{FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
	}
}

func TestTradeViewTeamLabel(t *testing.T) {
	testCases := []struct {
		name     string
		view     TradeView
		expected string
	}{
		{"Home side", TradeView{Trade: Trade{SelectedTeam: TeamSideHome}, Event: testEvent()}, "Boston Celtics"},
		{"Visitor side", TradeView{Trade: Trade{SelectedTeam: TeamSideVisitor}, Event: testEvent()}, "Los Angeles Lakers"},
		{"Missing event", TradeView{Trade: Trade{SelectedTeam: TeamSideHome}}, UnknownTeamLabel},
		{"Unknown side", TradeView{Trade: Trade{SelectedTeam: "draw"}, Event: testEvent()}, UnknownTeamLabel},
		{"Unnamed team", TradeView{Trade: Trade{SelectedTeam: TeamSideHome}, Event: &Event{}}, UnknownTeamLabel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.view.TeamLabel())
		})
	}
}

func TestTradeViewFixture(t *testing.T) {
	fixture, ok := TradeView{Event: testEvent()}.Fixture()
	assert.True(t, ok)
	assert.Equal(t, "Los Angeles Lakers @ Boston Celtics", fixture)

	_, ok = TradeView{}.Fixture()
	assert.False(t, ok)
}

func TestSortTradeViewsByRecency(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	views := []TradeView{
		{Trade: Trade{ID: "old", CreatedAt: base}},
		{Trade: Trade{ID: "new", CreatedAt: base.Add(2 * time.Hour)}},
		{Trade: Trade{ID: "tie-a", CreatedAt: base.Add(time.Hour)}},
		{Trade: Trade{ID: "tie-b", CreatedAt: base.Add(time.Hour)}},
	}

	SortTradeViewsByRecency(views)

	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.Trade.ID
	}
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old"}, ids)
}

func TestComputeRecord(t *testing.T) {
	views := []TradeView{
		{Trade: Trade{Status: TradeStatusWon}},
		{Trade: Trade{Status: TradeStatusWon}},
		{Trade: Trade{Status: TradeStatusLost}},
		{Trade: Trade{Status: TradeStatusPending}},
		{Trade: Trade{Status: "void"}},
	}

	assert.Equal(t, Record{Wins: 2, Losses: 1}, ComputeRecord(views))
	assert.Equal(t, Record{}, ComputeRecord(nil))
}

func TestIdentitySameUser(t *testing.T) {
	a := &Identity{ID: "u1", DisplayName: "A"}
	renamed := &Identity{ID: "u1", DisplayName: "B"}
	other := &Identity{ID: "u2"}

	assert.True(t, a.SameUser(renamed))
	assert.False(t, a.SameUser(other))
	assert.False(t, a.SameUser(nil))

	var none *Identity
	assert.True(t, none.SameUser(nil))
	assert.False(t, none.SameUser(a))
}

func TestEmptyProfileSnapshot(t *testing.T) {
	snapshot := EmptyProfileSnapshot()

	assert.False(t, snapshot.AccountFound)
	assert.True(t, snapshot.Balance.IsZero())
	assert.NotNil(t, snapshot.Trades)
	assert.Empty(t, snapshot.Trades)
}
