package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a private in-memory database, migrates
// it and closes it when the test ends
func NewTestDBManager(t testing.TB) *TestDBManager {
	t.Helper()

	log := logger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()

	// A named shared-cache memory database is private to this manager
	// and survives connection recycling.
	config := &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString()),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, log, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := manager.Migrate(context.Background(), false); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

// DB returns the test database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}
