package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
)

// PoolStatsRecorder receives sampled connection pool statistics
type PoolStatsRecorder interface {
	ObservePool(stats sql.DBStats)
}

// ConnectionPoolMonitor samples the connection pool and warns when it
// is close to exhaustion
type ConnectionPoolMonitor struct {
	db       *Manager
	recorder PoolStatsRecorder
	logger   coreport.Logger

	mutex    sync.RWMutex
	last     sql.DBStats
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor.
// recorder may be nil.
func NewConnectionPoolMonitor(db *Manager, recorder PoolStatsRecorder, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		recorder: recorder,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once, then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collect(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Stats returns the last sampled statistics
func (m *ConnectionPoolMonitor) Stats() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.last = stats
	m.mutex.Unlock()

	if m.recorder != nil {
		m.recorder.ObservePool(stats)
	}

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
