package profile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

func TestStore_Generations(t *testing.T) {
	store := NewStore()

	first := store.Begin("ada", true)
	second := store.Begin("ada", false)
	assert.Greater(t, second, first)
	assert.True(t, store.State().Loading)

	stale := &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(1)}
	assert.False(t, store.Complete(first, stale))
	assert.False(t, store.Fail(first))
	assert.False(t, store.Clear(first))
	assert.True(t, store.State().Loading)

	fresh := &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(2)}
	assert.True(t, store.Complete(second, fresh))

	state := store.State()
	assert.False(t, state.Loading)
	assert.True(t, state.Loaded)
	assert.True(t, state.Snapshot.Balance.Equal(decimal.NewFromInt(2)))
}

func TestStore_FailKeepsData(t *testing.T) {
	store := NewStore()
	gen := store.Begin("ada", true)
	store.Complete(gen, &entity.ProfileSnapshot{
		AccountFound: true,
		Balance:      decimal.NewFromInt(100),
		Trades:       []entity.TradeView{{Trade: entity.Trade{ID: "t1"}}},
	})

	gen = store.Begin("ada", false)
	assert.True(t, store.Fail(gen))

	state := store.State()
	assert.True(t, state.LoadFailed)
	assert.True(t, state.Loaded)
	assert.Len(t, state.Snapshot.Trades, 1)
	assert.True(t, state.Snapshot.Balance.Equal(decimal.NewFromInt(100)))

	// a reset drops the previous identity's data
	store.Begin("ada", true)
	state = store.State()
	assert.False(t, state.Loaded)
	assert.False(t, state.LoadFailed)
	assert.Empty(t, state.Snapshot.Trades)
	assert.True(t, state.Snapshot.Balance.IsZero())
}

func TestStore_StateIsACopy(t *testing.T) {
	store := NewStore()
	gen := store.Begin("ada", true)
	store.Complete(gen, &entity.ProfileSnapshot{Trades: []entity.TradeView{{Trade: entity.Trade{ID: "t1"}}}})

	state := store.State()
	state.Snapshot.Trades[0].Trade.ID = "mutated"

	assert.Equal(t, "t1", store.State().Snapshot.Trades[0].Trade.ID)
}

func TestStore_SubscribeCoalesces(t *testing.T) {
	store := NewStore()
	store.Begin("ada", true)
	ch, unsubscribe := store.Subscribe()

	store.SetBalance("ada", decimal.NewFromInt(5))
	store.SetBalance("ada", decimal.NewFromInt(6))

	assert.Len(t, ch, 1)
	<-ch

	unsubscribe()
	unsubscribe()
	store.SetBalance("ada", decimal.NewFromInt(7))
	assert.Len(t, ch, 0)
	assert.True(t, store.State().Snapshot.Balance.Equal(decimal.NewFromInt(7)))
}

func TestStore_SetBalanceForOtherOwnerIsDropped(t *testing.T) {
	store := NewStore()
	gen := store.Begin("bob", true)
	store.Complete(gen, &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(5)})

	assert.False(t, store.SetBalance("ada", decimal.NewFromInt(150)))
	assert.True(t, store.State().Snapshot.Balance.Equal(decimal.NewFromInt(5)))

	gen = store.Begin("", true)
	store.Clear(gen)
	assert.False(t, store.SetBalance("", decimal.NewFromInt(1)))
	assert.False(t, store.SetBalance("bob", decimal.NewFromInt(1)))
	assert.True(t, store.State().Snapshot.Balance.IsZero())
}

func TestStore_BalanceConfirmedDuringCycleSurvivesCompletion(t *testing.T) {
	store := NewStore()
	gen := store.Begin("ada", true)
	store.Complete(gen, &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(100)})

	// the reload reads the account before the credit commits
	gen = store.Begin("ada", false)
	require.True(t, store.SetBalance("ada", decimal.NewFromInt(150)))
	require.True(t, store.Complete(gen, &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(100)}))

	assert.True(t, store.State().Snapshot.Balance.Equal(decimal.NewFromInt(150)))

	// a later cycle that began after the credit publishes what it read
	gen = store.Begin("ada", false)
	require.True(t, store.Complete(gen, &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(175)}))
	assert.True(t, store.State().Snapshot.Balance.Equal(decimal.NewFromInt(175)))
}

func TestStore_ResetForgetsConfirmedBalance(t *testing.T) {
	store := NewStore()
	store.Begin("ada", true)
	require.True(t, store.SetBalance("ada", decimal.NewFromInt(150)))

	gen := store.Begin("bob", true)
	require.True(t, store.Complete(gen, &entity.ProfileSnapshot{AccountFound: true, Balance: decimal.NewFromInt(5)}))

	assert.True(t, store.State().Snapshot.Balance.Equal(decimal.NewFromInt(5)))
}
