package asset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/wager-profile/mocks/port/core"
)

func TestHTTPProber_Exists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/logos/LAL.png":
			w.WriteHeader(http.StatusOK)
		case "/logos/OLD.png":
			w.WriteHeader(http.StatusGone)
		case "/logos/ERR.png":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	prober := NewHTTPProber(server.Client(), time.Second)
	ctx := context.Background()

	exists, err := prober.Exists(ctx, server.URL+"/logos/LAL.png")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = prober.Exists(ctx, server.URL+"/logos/XYZ.png")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = prober.Exists(ctx, server.URL+"/logos/OLD.png")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = prober.Exists(ctx, server.URL+"/logos/ERR.png")
	assert.Error(t, err)
}

func TestHTTPProber_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/logos/LAL.png"
	server.Close()

	_, err := NewHTTPProber(nil, time.Second).Exists(context.Background(), url)
	assert.Error(t, err)
}

func TestMemoryCache(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()

	cache := NewMemoryCache(clock)
	ctx := context.Background()
	probe := &entity.LogoProbe{URL: "/logos/LAL.png", Exists: true, CheckedAt: now}

	_, found, err := cache.Get(ctx, "LAL")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "LAL", probe, time.Minute))
	require.NoError(t, cache.Set(ctx, "NOP", probe, 0))

	cached, found, err := cache.Get(ctx, "LAL")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, probe, cached)

	_, found, _ = cache.Get(ctx, "NOP")
	assert.False(t, found)

	now = now.Add(time.Minute)
	_, found, _ = cache.Get(ctx, "LAL")
	assert.False(t, found)
}

// TestRedisCache runs against a live server when WP_TEST_REDIS_ADDR is set
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("WP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WP_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := ConnectRedis(ctx, addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	cache := NewRedisCache(client, "wager-profile-test:"+t.Name()+":")
	probe := &entity.LogoProbe{URL: "/logos/LAL.png", Exists: true, CheckedAt: time.Now().UTC().Truncate(time.Second)}

	_, found, err := cache.Get(ctx, "LAL")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "LAL", probe, time.Minute))
	defer client.Del(ctx, cache.key("LAL"))

	cached, found, err := cache.Get(ctx, "LAL")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, probe.URL, cached.URL)
	assert.True(t, probe.CheckedAt.Equal(cached.CheckedAt))
}
