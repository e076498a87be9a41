package profile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/session"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/usecase"
)

// Watcher runs a profile load cycle whenever the observed identity
// changes. Starting a cycle cancels the one in flight, and the store
// drops results from any cycle that is no longer the latest.
type Watcher struct {
	source       session.IdentitySource
	loader       usecase.ProfileLoader
	store        *Store
	loadTimeout  time.Duration
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger

	mu          sync.Mutex
	identity    *entity.Identity
	cancelCycle context.CancelFunc
	unsubscribe func()
	stopped     bool
	wg          sync.WaitGroup
}

// NewWatcher creates a new Watcher. loadTimeout bounds every cycle;
// zero disables the bound.
func NewWatcher(
	source session.IdentitySource,
	loader usecase.ProfileLoader,
	store *Store,
	loadTimeout time.Duration,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Watcher {
	return &Watcher{
		source:       source,
		loader:       loader,
		store:        store,
		loadTimeout:  loadTimeout,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Start subscribes to identity changes and runs the initial cycle
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unsubscribe != nil || w.stopped {
		return
	}
	w.unsubscribe = w.source.Subscribe(w.onIdentity)

	w.identity = w.source.Current()
	w.triggerLocked(w.identity, true)
}

// Reload reruns the load cycle for the current identity
func (w *Watcher) Reload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	identity := w.source.Current()
	reset := !w.identity.SameUser(identity)
	w.identity = identity
	w.triggerLocked(identity, reset)
}

// Stop unsubscribes, cancels the cycle in flight and waits for it
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	if w.cancelCycle != nil {
		w.cancelCycle()
		w.cancelCycle = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// onIdentity ignores the notified value and re-reads the source under
// the lock: notifications from concurrent Set calls can arrive out of
// order, and only the latest identity may start a cycle.
func (w *Watcher) onIdentity(*entity.Identity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	identity := w.source.Current()
	reset := !w.identity.SameUser(identity)
	w.identity = identity
	w.triggerLocked(identity, reset)
}

// triggerLocked starts a cycle for identity. w.mu must be held.
func (w *Watcher) triggerLocked(identity *entity.Identity, reset bool) {
	if w.stopped {
		return
	}
	// Begin first so the superseded cycle can never publish
	gen := w.store.Begin(ownerOf(identity), reset)

	if w.cancelCycle != nil {
		w.cancelCycle()
		w.cancelCycle = nil
	}

	if identity == nil {
		w.store.Clear(gen)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if w.loadTimeout > 0 {
		ctx, cancel = withTimeout(ctx, cancel, w.timeProvider, w.loadTimeout)
	}
	w.cancelCycle = cancel

	w.wg.Add(1)
	go w.run(ctx, cancel, gen, identity)
}

func (w *Watcher) run(ctx context.Context, cancel context.CancelFunc, gen uint64, identity *entity.Identity) {
	defer w.wg.Done()
	defer cancel()

	start := w.timeProvider.Now()
	snapshot, err := w.loader.Load(ctx, identity)
	elapsed := w.timeProvider.Since(start)

	if err != nil {
		if !w.store.Fail(gen) {
			w.metrics.ObserveLoad(coreport.LoadOutcomeDiscarded, elapsed)
			return
		}
		w.metrics.ObserveLoad(coreport.LoadOutcomeFailure, elapsed)

		loadErr := &errs.LoadError{UserID: identity.ID, Generation: gen, Stage: stageOf(err), Err: err}
		w.logger.Error("Profile load failed", loadErr.LogFields())
		return
	}

	if !w.store.Complete(gen, snapshot) {
		w.metrics.ObserveLoad(coreport.LoadOutcomeDiscarded, elapsed)
		w.logger.Debug("Discarded stale profile load", map[string]any{
			"user_id":    identity.ID,
			"generation": gen,
		})
		return
	}

	w.metrics.ObserveLoad(coreport.LoadOutcomeSuccess, elapsed)
	w.logger.Debug("Profile loaded", map[string]any{
		"user_id":    identity.ID,
		"generation": gen,
		"trades":     len(snapshot.Trades),
		"elapsed_ms": elapsed.Milliseconds(),
	})
}

func withTimeout(
	parent context.Context,
	cancelParent context.CancelFunc,
	timeProvider coreport.TimeProvider,
	timeout time.Duration,
) (context.Context, context.CancelFunc) {
	ctx, cancel := timeProvider.WithTimeout(parent, timeout)
	return ctx, func() {
		cancel()
		cancelParent()
	}
}

func ownerOf(identity *entity.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.ID
}

func stageOf(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "fetch"
	}
}
