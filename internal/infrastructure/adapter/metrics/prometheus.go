package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements the core Metrics port and the database pool
// recorder on a caller-supplied registry
type Prometheus struct {
	loads          *prometheus.CounterVec
	loadDuration   *prometheus.HistogramVec
	deposits       *prometheus.CounterVec
	logoProbes     *prometheus.CounterVec
	publishes      *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	poolOpen       prometheus.Gauge
	poolInUse      prometheus.Gauge
	poolIdle       prometheus.Gauge
	poolWaitCount  prometheus.Gauge
	activeSessions prometheus.Gauge
}

// NewPrometheus registers the service collectors on registerer
func NewPrometheus(registerer prometheus.Registerer, namespace string) *Prometheus {
	m := &Prometheus{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_loads_total",
			Help:      "Profile load cycles by outcome.",
		}, []string{"outcome"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "profile_load_duration_seconds",
			Help:      "Duration of profile load cycles.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_deposits_total",
			Help:      "Add-funds attempts by outcome.",
		}, []string{"outcome"}),
		logoProbes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logo_lookups_total",
			Help:      "Team logo lookups by result.",
		}, []string{"result"}),
		publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "funds_events_published_total",
			Help:      "Funds-added event publish attempts by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		poolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_open_connections",
			Help:      "Open database connections.",
		}),
		poolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_in_use_connections",
			Help:      "Database connections in use.",
		}),
		poolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle_connections",
			Help:      "Idle database connections.",
		}),
		poolWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_wait_count",
			Help:      "Total connections waited for.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "profile_sessions_active",
			Help:      "Live browser sessions.",
		}),
	}

	registerer.MustRegister(
		m.loads, m.loadDuration, m.deposits, m.logoProbes, m.publishes,
		m.httpRequests, m.httpDuration,
		m.poolOpen, m.poolInUse, m.poolIdle, m.poolWaitCount, m.activeSessions,
	)
	return m
}

func (m *Prometheus) ObserveLoad(outcome string, duration time.Duration) {
	m.loads.WithLabelValues(outcome).Inc()
	m.loadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Prometheus) ObserveDeposit(outcome string) {
	m.deposits.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObserveLogoProbe(result string) {
	m.logoProbes.WithLabelValues(result).Inc()
}

func (m *Prometheus) ObservePublish(result string) {
	m.publishes.WithLabelValues(result).Inc()
}

// ObserveHTTP records one served request
func (m *Prometheus) ObserveHTTP(route, method, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// ObservePool records sampled connection pool statistics
func (m *Prometheus) ObservePool(stats sql.DBStats) {
	m.poolOpen.Set(float64(stats.OpenConnections))
	m.poolInUse.Set(float64(stats.InUse))
	m.poolIdle.Set(float64(stats.Idle))
	m.poolWaitCount.Set(float64(stats.WaitCount))
}

// SetActiveSessions records the number of live sessions
func (m *Prometheus) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
