package asset

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

type cachedProbe struct {
	probe     entity.LogoProbe
	expiresAt time.Time
}

// MemoryCache is an in-process logo probe cache for single-instance
// deployments
type MemoryCache struct {
	mu           sync.RWMutex
	entries      map[string]cachedProbe
	timeProvider coreport.TimeProvider
}

// NewMemoryCache creates an empty cache
func NewMemoryCache(timeProvider coreport.TimeProvider) *MemoryCache {
	return &MemoryCache{
		entries:      make(map[string]cachedProbe),
		timeProvider: timeProvider,
	}
}

// Get returns the unexpired probe for abbreviation
func (c *MemoryCache) Get(_ context.Context, abbreviation string) (*entity.LogoProbe, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[abbreviation]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !c.timeProvider.Now().Before(entry.expiresAt) {
		c.mu.Lock()
		if current, ok := c.entries[abbreviation]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, abbreviation)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	probe := entry.probe
	return &probe, true, nil
}

// Set stores probe for ttl
func (c *MemoryCache) Set(_ context.Context, abbreviation string, probe *entity.LogoProbe, ttl time.Duration) error {
	if probe == nil || ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[abbreviation] = cachedProbe{
		probe:     *probe,
		expiresAt: c.timeProvider.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}
