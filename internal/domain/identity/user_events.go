package identity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserCreated               = "UserCreated"
	EventTypeUserUpdated               = "UserUpdated"
	EventTypeUserDeactivated           = "UserDeactivated"
	EventTypeUserEarningsRecalculated  = "UserEarningsRecalculated"
	EventTypeUserNotificationDelivered = "UserNotificationDelivered"
)

// UserCreatedEvent is published when a new user joins a shop
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID, user.ShopID),
		UserID:          user.ID,
		Name:            user.Name,
		Role:            user.Role,
	}
}

// UserUpdatedEvent is published when a user's details change
type UserUpdatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
}

// NewUserUpdatedEvent creates a new UserUpdatedEvent
func NewUserUpdatedEvent(user *User) *UserUpdatedEvent {
	return &UserUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserUpdated, AggregateTypeUser, user.ID, user.ShopID),
		UserID:          user.ID,
		Name:            user.Name,
		Role:            user.Role,
	}
}

// UserDeactivatedEvent is published when a user is deactivated
type UserDeactivatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// NewUserDeactivatedEvent creates a new UserDeactivatedEvent
func NewUserDeactivatedEvent(user *User) *UserDeactivatedEvent {
	return &UserDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserDeactivated, AggregateTypeUser, user.ID, user.ShopID),
		UserID:          user.ID,
		Name:            user.Name,
	}
}

// UserEarningsRecalculatedEvent is published when the reconciliation path
// overwrites a user's earnings counters
type UserEarningsRecalculatedEvent struct {
	shared.BaseDomainEvent
	UserID        uuid.UUID       `json:"user_id"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	PaidSalary    decimal.Decimal `json:"paid_salary"`
}

// NewUserEarningsRecalculatedEvent creates a new UserEarningsRecalculatedEvent
func NewUserEarningsRecalculatedEvent(user *User) *UserEarningsRecalculatedEvent {
	return &UserEarningsRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserEarningsRecalculated, AggregateTypeUser, user.ID, user.ShopID),
		UserID:          user.ID,
		TotalEarnings:   user.TotalEarnings,
		PaidSalary:      user.PaidSalary,
	}
}

// UserNotificationDeliveredEvent is published when a notification is
// appended to a user's inbox
type UserNotificationDeliveredEvent struct {
	shared.BaseDomainEvent
	UserID         uuid.UUID `json:"user_id"`
	NotificationID uuid.UUID `json:"notification_id"`
	Kind           string    `json:"kind"`
}

// NewUserNotificationDeliveredEvent creates a new UserNotificationDeliveredEvent
func NewUserNotificationDeliveredEvent(shopID uuid.UUID, notification *Notification) *UserNotificationDeliveredEvent {
	return &UserNotificationDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserNotificationDelivered, AggregateTypeUser, notification.UserID, shopID),
		UserID:          notification.UserID,
		NotificationID:  notification.ID,
		Kind:            string(notification.Kind),
	}
}
