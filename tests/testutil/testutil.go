// Package testutil provides shared helpers for integration tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/infrastructure/persistence/models"
)

// NewSQLiteDB opens an isolated in-memory database with the full schema
// migrated. Counter arithmetic and the ledger aggregates only use portable
// SQL, so the repositories run unchanged against SQLite.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.NotificationModel{},
		&models.ClientModel{},
		&models.PaymentRecordModel{},
		&models.OrderModel{},
		&models.AssignmentModel{},
		&models.EditingProjectModel{},
		&models.SalaryModel{},
	))

	return db
}

// CollectingHandler records every event it receives.
type CollectingHandler struct {
	mu         sync.Mutex
	eventTypes []string
	events     []shared.DomainEvent
}

// NewCollectingHandler creates a handler subscribed to the given event types
func NewCollectingHandler(eventTypes ...string) *CollectingHandler {
	return &CollectingHandler{eventTypes: eventTypes}
}

// Handle implements shared.EventHandler
func (h *CollectingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

// EventTypes implements shared.EventHandler
func (h *CollectingHandler) EventTypes() []string {
	return h.eventTypes
}

// Events returns a copy of the recorded events
func (h *CollectingHandler) Events() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]shared.DomainEvent, len(h.events))
	copy(out, h.events)
	return out
}
