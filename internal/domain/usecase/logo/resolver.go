package logo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/asset"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// Options configures a Resolver
type Options struct {
	URLTemplate  string        // fmt template with one %s for the abbreviation
	FoundTTL     time.Duration // how long a found asset is cached
	MissingTTL   time.Duration // how long a missing asset is cached
	ProbeTimeout time.Duration // upper bound for one probe, 0 = none
}

// Resolver confirms team logo assets exist before they are rendered.
// Probe outcomes are shared through a cache keyed by abbreviation and
// concurrent probes for one abbreviation collapse into a single request.
type Resolver struct {
	prober       asset.LogoProber
	cache        asset.LogoCache
	opts         Options
	group        singleflight.Group
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger
}

// NewResolver creates a new logo Resolver
func NewResolver(
	prober asset.LogoProber,
	cache asset.LogoCache,
	opts Options,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Resolver {
	return &Resolver{
		prober:       prober,
		cache:        cache,
		opts:         opts,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// AssetURL renders the conventional asset URL for an abbreviation
func (r *Resolver) AssetURL(abbreviation string) string {
	return fmt.Sprintf(r.opts.URLTemplate, url.PathEscape(abbreviation))
}

// Resolve returns the team's logo, or nil when the asset is missing or
// could not be probed. Failures are never surfaced to the caller.
func (r *Resolver) Resolve(ctx context.Context, abbreviation, teamName string) *entity.Logo {
	abbreviation = strings.TrimSpace(abbreviation)
	if abbreviation == "" {
		return nil
	}

	if probe, found := r.cached(ctx, abbreviation); found {
		r.metrics.ObserveLogoProbe("hit")
		return logoFor(probe, teamName)
	}

	v, _, _ := r.group.Do(abbreviation, func() (any, error) {
		return r.probe(ctx, abbreviation), nil
	})

	return logoFor(v.(*entity.LogoProbe), teamName)
}

func (r *Resolver) cached(ctx context.Context, abbreviation string) (*entity.LogoProbe, bool) {
	probe, found, err := r.cache.Get(ctx, abbreviation)
	if err != nil {
		r.logger.Warn("Logo cache lookup failed", map[string]any{
			"abbreviation": abbreviation,
			"error":        err.Error(),
		})
		return nil, false
	}
	return probe, found
}

// probe runs detached from the first caller's cancellation because its
// result is shared with every caller waiting on the same abbreviation.
func (r *Resolver) probe(ctx context.Context, abbreviation string) *entity.LogoProbe {
	probeCtx := context.WithoutCancel(ctx)
	if r.opts.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = r.timeProvider.WithTimeout(probeCtx, r.opts.ProbeTimeout)
		defer cancel()
	}

	assetURL := r.AssetURL(abbreviation)
	exists, err := r.prober.Exists(probeCtx, assetURL)
	result := &entity.LogoProbe{
		URL:       assetURL,
		Exists:    exists && err == nil,
		CheckedAt: r.timeProvider.Now(),
	}

	if err != nil {
		// Probe errors are not cached so the next render retries
		r.metrics.ObserveLogoProbe("error")
		r.logger.Debug("Logo probe failed", map[string]any{
			"abbreviation": abbreviation,
			"url":          assetURL,
			"error":        err.Error(),
		})
		return result
	}

	ttl := r.opts.MissingTTL
	outcome := "missing"
	if exists {
		ttl = r.opts.FoundTTL
		outcome = "found"
	}
	r.metrics.ObserveLogoProbe(outcome)

	if ttl > 0 {
		if err := r.cache.Set(probeCtx, abbreviation, result, ttl); err != nil {
			r.logger.Warn("Failed to cache logo probe", map[string]any{
				"abbreviation": abbreviation,
				"error":        err.Error(),
			})
		}
	}

	return result
}

func logoFor(probe *entity.LogoProbe, teamName string) *entity.Logo {
	if probe == nil || !probe.Exists {
		return nil
	}
	return entity.NewLogo(probe.URL, teamName)
}
