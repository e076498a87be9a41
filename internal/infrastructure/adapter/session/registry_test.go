package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/wager-profile/mocks/port/core"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(t *testing.T, idleTTL time.Duration) (*Registry, *manualClock) {
	clock := &manualClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().RunAndReturn(clock.Now).Maybe()

	log := logger.NewNoopLogger()
	factory := func(identity *IdentityState) *profile.Page {
		return profile.NewPage(identity, profile.PageDeps{
			TimeProvider: timeProvider,
			Metrics:      coreport.NoopMetrics{},
			Logger:       log,
		})
	}
	return NewRegistry(factory, idleTTL, timeProvider, log), clock
}

func TestRegistry_GetOrCreate(t *testing.T) {
	registry, _ := newTestRegistry(t, time.Minute)
	defer registry.Close()

	var counts []int
	registry.OnCount(func(n int) { counts = append(counts, n) })

	id, page := registry.GetOrCreate("")
	require.NotEmpty(t, id)
	require.NotNil(t, page)

	sameID, samePage := registry.GetOrCreate(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, page, samePage)

	otherID, otherPage := registry.GetOrCreate("unknown")
	assert.NotEqual(t, "unknown", otherID)
	assert.NotSame(t, page, otherPage)
	assert.Equal(t, 2, registry.Len())

	registry.Remove(otherID)
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []int{1, 2, 1}, counts)
}

func TestRegistry_ForPrincipal(t *testing.T) {
	registry, _ := newTestRegistry(t, time.Minute)
	defer registry.Close()

	page := registry.ForPrincipal("ada")
	require.NotNil(t, page)
	assert.Same(t, page, registry.ForPrincipal("ada"))
	assert.NotSame(t, page, registry.ForPrincipal("bob"))
	assert.Equal(t, 2, registry.Len())

	// a cookie can never name a principal session
	id, cookiePage := registry.GetOrCreate("principal:ada")
	assert.NotEqual(t, "principal:ada", id)
	assert.NotSame(t, page, cookiePage)
	assert.Equal(t, 3, registry.Len())
}

func TestRegistry_SweepEvictsIdleSessions(t *testing.T) {
	registry, clock := newTestRegistry(t, time.Minute)
	defer registry.Close()

	idle, _ := registry.GetOrCreate("")
	clock.Advance(45 * time.Second)
	active, _ := registry.GetOrCreate("")

	clock.Advance(30 * time.Second)
	_, ok := registry.Get(active)
	require.True(t, ok)

	assert.Equal(t, 1, registry.Sweep())
	_, ok = registry.Get(idle)
	assert.False(t, ok)
	_, ok = registry.Get(active)
	assert.True(t, ok)
}

func TestRegistry_SweepDisabled(t *testing.T) {
	registry, clock := newTestRegistry(t, 0)
	defer registry.Close()

	registry.GetOrCreate("")
	clock.Advance(24 * time.Hour)

	assert.Equal(t, 0, registry.Sweep())
	assert.Equal(t, 1, registry.Len())
}

func TestIdentityState_NotifiesOnPrincipalChange(t *testing.T) {
	state := NewIdentityState()
	var seen []*entity.Identity
	unsubscribe := state.Subscribe(func(identity *entity.Identity) {
		seen = append(seen, identity)
	})

	ada := &entity.Identity{ID: "ada", DisplayName: "Ada"}
	state.Set(ada)
	// refreshed claims for the same principal update silently
	state.Set(&entity.Identity{ID: "ada", DisplayName: "Ada L."})
	assert.Equal(t, "Ada L.", state.Current().DisplayName)
	state.Set(nil)

	require.Len(t, seen, 2)
	assert.Same(t, ada, seen[0])
	assert.Nil(t, seen[1])

	unsubscribe()
	state.Set(ada)
	assert.Len(t, seen, 2)
}
