package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/wager-profile/mocks/port/core"
)

// stubIdentity is an in-memory session.IdentityHolder
type stubIdentity struct {
	mu      sync.Mutex
	current *entity.Identity
	subs    map[int]func(*entity.Identity)
	next    int
}

func newStubIdentity(identity *entity.Identity) *stubIdentity {
	return &stubIdentity{current: identity, subs: make(map[int]func(*entity.Identity))}
}

func (s *stubIdentity) Current() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *stubIdentity) Set(identity *entity.Identity) {
	s.mu.Lock()
	s.current = identity
	subs := make([]func(*entity.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}

func (s *stubIdentity) Subscribe(fn func(*entity.Identity)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// newClock returns a time provider backed by the wall clock
func newClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(time.Now).Maybe()
	clock.EXPECT().Since(mock.Anything).RunAndReturn(time.Since).Maybe()
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).RunAndReturn(context.WithTimeout).Maybe()
	return clock
}

// newQuietLogger accepts any log call
func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// newQuietMetrics accepts any observation
func newQuietMetrics(t *testing.T) *coremocks.MockMetrics {
	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().ObserveLoad(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().ObserveDeposit(mock.Anything).Maybe()
	metrics.EXPECT().ObserveLogoProbe(mock.Anything).Maybe()
	metrics.EXPECT().ObservePublish(mock.Anything).Maybe()
	return metrics
}

func waitForState(t *testing.T, store *Store, cond func(State) bool) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		state := store.State()
		if cond(state) {
			return state
		}
		if time.Now().After(deadline) {
			t.Fatalf("store never reached expected state, last: %+v", state)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
