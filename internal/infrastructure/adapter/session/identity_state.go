package session

import (
	"sync"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// IdentityState is the per-session current identity. Subscribers are
// notified when the principal changes, including sign-in and sign-out;
// refreshing the same principal's claims updates silently.
type IdentityState struct {
	mu          sync.Mutex
	identity    *entity.Identity
	subscribers map[int]func(*entity.Identity)
	nextID      int
}

// NewIdentityState creates a signed-out identity state
func NewIdentityState() *IdentityState {
	return &IdentityState{
		subscribers: make(map[int]func(*entity.Identity)),
	}
}

// Current returns the signed-in identity, or nil
func (s *IdentityState) Current() *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Set replaces the current identity and notifies subscribers when the
// principal changed. Callbacks run on the caller's goroutine, outside
// the lock.
func (s *IdentityState) Set(identity *entity.Identity) {
	s.mu.Lock()
	changed := !s.identity.SameUser(identity)
	s.identity = identity
	var fns []func(*entity.Identity)
	if changed {
		fns = make([]func(*entity.Identity), 0, len(s.subscribers))
		for _, fn := range s.subscribers {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}

// Subscribe registers fn for identity changes
func (s *IdentityState) Subscribe(fn func(*entity.Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
