package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopworks/backend/internal/domain/shared"
)

// NotificationKind classifies what triggered a notification.
type NotificationKind string

const (
	NotificationKindSalaryPaid   NotificationKind = "salary_paid"
	NotificationKindSalaryEarned NotificationKind = "salary_earned"
	NotificationKindAnnouncement NotificationKind = "announcement"
)

// Notification is one entry in a user's inbox. Notifications are append-only
// and delivered best-effort; a failed delivery never fails the operation
// that triggered it.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      NotificationKind
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// NewNotification creates a notification for a user's inbox.
func NewNotification(userID uuid.UUID, kind NotificationKind, title, message string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Notification title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Notification title cannot exceed 200 characters")
	}

	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	n.IsRead = true
}
