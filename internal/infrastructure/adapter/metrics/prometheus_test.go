package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheus_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheus(registry, "wager")

	m.ObserveLoad("ready", 120*time.Millisecond)
	m.ObserveLoad("ready", 80*time.Millisecond)
	m.ObserveLoad("failed", time.Second)
	m.ObserveDeposit("credited")
	m.ObserveLogoProbe("hit")
	m.ObserveLogoProbe("hit")
	m.ObservePublish("error")
	m.ObserveHTTP("/profile", "GET", "200", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues("ready")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deposits.WithLabelValues("credited")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logoProbes.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.publishes.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/profile", "GET", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.loadDuration))
}

func TestPrometheus_Gauges(t *testing.T) {
	m := NewPrometheus(prometheus.NewRegistry(), "wager")

	m.ObservePool(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 7})
	m.SetActiveSessions(12)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.poolOpen))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.poolInUse))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.poolIdle))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.poolWaitCount))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.activeSessions))
}

func TestNewPrometheus_DuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewPrometheus(registry, "wager")

	assert.Panics(t, func() { NewPrometheus(registry, "wager") })
}
