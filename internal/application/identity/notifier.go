package identity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopworks/backend/internal/domain/identity"
	"github.com/shopworks/backend/internal/domain/payroll"
	"github.com/shopworks/backend/internal/domain/shared"
)

// SalaryNotifier writes an inbox entry for the employee whenever a ledger
// entry is created for them. Paid-out entries are notified by the payout
// cascade itself; this handler covers the earning side.
type SalaryNotifier struct {
	notificationRepo identity.NotificationRepository
	logger           *zap.Logger
}

// NewSalaryNotifier creates a new SalaryNotifier
func NewSalaryNotifier(notificationRepo identity.NotificationRepository, logger *zap.Logger) *SalaryNotifier {
	return &SalaryNotifier{notificationRepo: notificationRepo, logger: logger}
}

// Handle writes the notification for a salary-created event
func (h *SalaryNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*payroll.SalaryCreatedEvent)
	if !ok {
		return nil
	}

	notification, err := identity.NewNotification(created.UserID, identity.NotificationKindSalaryEarned,
		"Salary recorded",
		fmt.Sprintf("You earned %s for %s", created.Amount.StringFixed(2), created.Type))
	if err != nil {
		return err
	}

	if err := h.notificationRepo.Save(ctx, notification); err != nil {
		h.logger.Warn("Failed to write salary notification",
			zap.String("user_id", created.UserID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *SalaryNotifier) EventTypes() []string {
	return []string{payroll.EventTypeSalaryCreated}
}
