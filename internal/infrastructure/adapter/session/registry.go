package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
)

// principalPrefix keys sessions of cookieless API clients, which are
// never reachable through a session cookie
const principalPrefix = "principal:"

// PageFactory builds the profile page of a new session
type PageFactory func(identity *IdentityState) *profile.Page

type entry struct {
	page     *profile.Page
	lastSeen time.Time
}

// Registry keeps one profile page per browser session and evicts
// sessions idle for longer than the configured TTL.
type Registry struct {
	mu           sync.Mutex
	pages        map[string]*entry
	factory      PageFactory
	idleTTL      time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	onCount      func(int)

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewRegistry creates an empty session registry
func NewRegistry(factory PageFactory, idleTTL time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *Registry {
	return &Registry{
		pages:        make(map[string]*entry),
		factory:      factory,
		idleTTL:      idleTTL,
		timeProvider: timeProvider,
		logger:       logger,
		stop:         make(chan struct{}),
	}
}

// OnCount registers fn to receive the session count after it changes
func (r *Registry) OnCount(fn func(int)) {
	r.mu.Lock()
	r.onCount = fn
	r.mu.Unlock()
}

func (r *Registry) reportCount() {
	r.mu.Lock()
	fn, count := r.onCount, len(r.pages)
	r.mu.Unlock()
	if fn != nil {
		fn(count)
	}
}

// Get returns the page of cookie session id and marks the session
// active. Principal sessions are not reachable through Get.
func (r *Registry) Get(id string) (*profile.Page, bool) {
	if strings.HasPrefix(id, principalPrefix) {
		return nil, false
	}
	return r.touch(id)
}

func (r *Registry) touch(id string) (*profile.Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pages[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.timeProvider.Now()
	return e.page, true
}

// GetOrCreate returns the page of session id, creating a new session
// with a fresh id when id is unknown. The returned id is the one to
// hand back to the client.
func (r *Registry) GetOrCreate(id string) (string, *profile.Page) {
	if id != "" {
		if page, ok := r.Get(id); ok {
			return id, page
		}
	}

	id = uuid.NewString()
	return id, r.create(id)
}

// ForPrincipal returns the session shared by every cookieless request
// of principalID, creating it on first use. Header-authenticated API
// clients land here so repeated requests reuse one page and its load.
func (r *Registry) ForPrincipal(principalID string) *profile.Page {
	id := principalPrefix + principalID
	if page, ok := r.touch(id); ok {
		return page
	}
	return r.create(id)
}

func (r *Registry) create(id string) *profile.Page {
	r.mu.Lock()
	if e, ok := r.pages[id]; ok {
		e.lastSeen = r.timeProvider.Now()
		r.mu.Unlock()
		return e.page
	}
	page := r.factory(NewIdentityState())
	r.pages[id] = &entry{page: page, lastSeen: r.timeProvider.Now()}
	count := len(r.pages)
	r.mu.Unlock()

	r.logger.Debug("Session created", map[string]any{
		"session_id": id,
		"sessions":   count,
	})
	r.reportCount()
	return page
}

// Remove ends session id
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	e, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()

	if ok {
		e.page.Close()
		r.reportCount()
	}
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep evicts idle sessions and returns how many were removed
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	now := r.timeProvider.Now()
	var expired []*profile.Page

	r.mu.Lock()
	for id, e := range r.pages {
		if now.Sub(e.lastSeen) > r.idleTTL {
			expired = append(expired, e.page)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, page := range expired {
		page.Close()
	}
	if len(expired) > 0 {
		r.logger.Info("Evicted idle sessions", map[string]any{
			"count": len(expired),
		})
		r.reportCount()
	}
	return len(expired)
}

// StartJanitor sweeps idle sessions every interval until Close
func (r *Registry) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-r.stop:
				return
			}
		}
	}()
}

// Close stops the janitor and every session page
func (r *Registry) Close() {
	close(r.stop)
	r.wg.Wait()

	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range pages {
		e.page.Close()
	}
	r.logger.Info("Session registry closed", map[string]any{
		"sessions": len(pages),
	})
}
