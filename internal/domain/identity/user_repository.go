package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for User aggregates.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*User, error)
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]User, error)
	FindByRoleForShop(ctx context.Context, shopID uuid.UUID, role Role) ([]User, error)
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)

	// FindByExternalUID resolves an identity-provider UID to a user. The UID
	// is globally unique; shop membership is checked by the caller.
	FindByExternalUID(ctx context.Context, externalUID string) (*User, error)

	FindByPhone(ctx context.Context, shopID uuid.UUID, phone string) (*User, error)
	Save(ctx context.Context, user *User) error
	DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error

	// AdjustSalary atomically increments the user's earnings counters by the
	// given deltas in a single UPDATE statement. Deltas may be negative.
	// There must be no read-modify-write window.
	AdjustSalary(ctx context.Context, shopID, userID uuid.UUID, deltaEarnings, deltaPaid decimal.Decimal) error
}

// NotificationRepository persists user inbox entries.
type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	FindForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, error)
	CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
