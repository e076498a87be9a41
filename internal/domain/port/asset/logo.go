package asset

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
)

// LogoProber checks whether an image asset exists at a URL
type LogoProber interface {
	// Exists returns false with a nil error when the asset is missing
	// and a non-nil error when the probe itself failed
	Exists(ctx context.Context, url string) (bool, error)
}

// LogoCache stores probe outcomes keyed by team abbreviation
type LogoCache interface {
	// Get returns the cached probe, or found=false on a miss
	Get(ctx context.Context, abbreviation string) (probe *entity.LogoProbe, found bool, err error)
	// Set stores a probe for ttl
	Set(ctx context.Context, abbreviation string, probe *entity.LogoProbe, ttl time.Duration) error
}
