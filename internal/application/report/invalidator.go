package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
	"github.com/shopworks/backend/internal/domain/trade"
)

// CacheInvalidator drops a shop's cached dashboard payloads whenever a
// mutation event for that shop comes through the bus. The dashboard is then
// recomputed on the next read.
type CacheInvalidator struct {
	cache  DashboardCache
	logger *zap.Logger
}

// NewCacheInvalidator creates a new CacheInvalidator
func NewCacheInvalidator(cache DashboardCache, logger *zap.Logger) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, logger: logger}
}

// Handle drops the cache for the event's shop
func (h *CacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.cache == nil {
		return nil
	}
	if err := h.cache.Invalidate(ctx, event.ShopID()); err != nil {
		h.logger.Warn("dashboard cache invalidation failed",
			zap.String("event_type", event.EventType()),
			zap.String("shop_id", event.ShopID().String()),
			zap.Error(err))
		return err
	}
	return nil
}

// EventTypes lists every mutation event that can change a dashboard number
func (h *CacheInvalidator) EventTypes() []string {
	return []string{
		trade.EventTypeOrderCreated,
		trade.EventTypeOrderCompleted,
		trade.EventTypeOrderPaymentRecorded,
		trade.EventTypeOrderDeleted,
		trade.EventTypeProjectCreated,
		trade.EventTypeProjectUpdated,
		trade.EventTypeProjectCompleted,
		trade.EventTypeProjectDeleted,
		payroll.EventTypeSalaryCreated,
		payroll.EventTypeSalaryPaid,
		payroll.EventTypeSalaryDeleted,
		partner.EventTypeClientCreated,
		partner.EventTypeClientUpdated,
		partner.EventTypeClientBalanceRecalculated,
		partner.EventTypeClientDeleted,
	}
}
