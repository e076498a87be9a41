package profile

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// State is a point-in-time copy of the profile store
type State struct {
	Generation uint64
	Loading    bool
	LoadFailed bool
	Loaded     bool // at least one cycle for an identity has completed
	Snapshot   entity.ProfileSnapshot
}

// Store holds the profile data published by load cycles. Each cycle is
// tagged with a generation; completions from any generation other than
// the latest are discarded. The store also tracks which principal the
// cycles belong to, so wallet balances confirmed for anyone else are
// dropped.
type Store struct {
	mu          sync.Mutex
	generation  uint64
	owner       string
	loading     bool
	loadFailed  bool
	loaded      bool
	snapshot    entity.ProfileSnapshot
	confirmed   *decimal.Decimal // set while a cycle is in flight
	subscribers map[int]chan struct{}
	nextSubID   int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		snapshot:    *entity.EmptyProfileSnapshot(),
		subscribers: make(map[int]chan struct{}),
	}
}

// Begin starts a new load cycle for principal owner ("" when signed
// out) and returns its generation. When reset is set the previous
// profile is dropped, so a failed cycle for a new identity never shows
// another identity's data.
func (s *Store) Begin(owner string, reset bool) uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.owner = owner
	s.loading = true
	s.confirmed = nil
	if reset {
		s.loaded = false
		s.loadFailed = false
		s.snapshot = *entity.EmptyProfileSnapshot()
	}
	s.mu.Unlock()

	s.notify()
	return gen
}

// Clear ends cycle gen with an empty profile, used when no identity is
// present. Returns false if gen is stale.
func (s *Store) Clear(gen uint64) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.owner = ""
	s.loading = false
	s.loadFailed = false
	s.loaded = false
	s.confirmed = nil
	s.snapshot = *entity.EmptyProfileSnapshot()
	s.mu.Unlock()

	s.notify()
	return true
}

// Complete publishes the snapshot of cycle gen. Returns false if gen is
// stale and the snapshot was discarded. A balance confirmed after the
// cycle began replaces the one the cycle read.
func (s *Store) Complete(gen uint64, snapshot *entity.ProfileSnapshot) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.loading = false
	s.loadFailed = false
	s.loaded = true
	s.snapshot = *snapshot
	if s.confirmed != nil {
		s.snapshot.Balance = *s.confirmed
		s.confirmed = nil
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// Fail ends cycle gen keeping the previous trades and balance. Returns
// false if gen is stale.
func (s *Store) Fail(gen uint64) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.loading = false
	s.loadFailed = true
	s.confirmed = nil
	s.mu.Unlock()

	s.notify()
	return true
}

// SetBalance records a balance the wallet confirmed for principal
// owner. The write is dropped, returning false, when the store now
// belongs to a different principal. While a cycle is in flight the
// balance is also kept for that cycle's completion, since the cycle may
// have read the account before the credit committed.
func (s *Store) SetBalance(owner string, balance decimal.Decimal) bool {
	s.mu.Lock()
	if owner == "" || owner != s.owner {
		s.mu.Unlock()
		return false
	}
	s.snapshot.Balance = balance
	if s.loading {
		s.confirmed = &balance
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// State returns a copy of the store contents
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot
	snapshot.Trades = append([]entity.TradeView(nil), s.snapshot.Trades...)

	return State{
		Generation: s.generation,
		Loading:    s.loading,
		LoadFailed: s.loadFailed,
		Loaded:     s.loaded,
		Snapshot:   snapshot,
	}
}

// Subscribe returns a channel that receives a signal after every change.
// Signals coalesce: a slow reader sees at most one pending signal.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
