package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProber checks logo existence with a HEAD request
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber creates a prober. A nil client uses one with timeout.
func NewHTTPProber(client *http.Client, timeout time.Duration) *HTTPProber {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPProber{client: client}
}

// Exists reports whether url answers with a success status. 404 and 410
// mean missing; other failures are returned as errors.
func (p *HTTPProber) Exists(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("build logo probe: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return false, nil
	default:
		return false, fmt.Errorf("probe %s: unexpected status %d", url, resp.StatusCode)
	}
}
