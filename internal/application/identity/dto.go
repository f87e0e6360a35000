package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/identity"
)

// CreateUserRequest represents a request to register a shop member
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Role        string `json:"role" binding:"required,oneof=owner worker transporter editor"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Password    string `json:"password" binding:"omitempty,min=8,max=72"`
	ExternalUID string `json:"external_uid" binding:"max=200"`
}

// UpdateUserRequest represents a request to update a shop member
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	Role  *string `json:"role" binding:"omitempty,oneof=owner worker transporter editor"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
}

// UserListFilter represents filter options for listing users
type UserListFilter struct {
	Page     int
	PageSize int
	Role     string
	Search   string
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID              uuid.UUID       `json:"id"`
	ShopID          uuid.UUID       `json:"shop_id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Role            string          `json:"role"`
	IsActive        bool            `json:"is_active"`
	ExternalUID     string          `json:"external_uid,omitempty"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	PaidSalary      decimal.Decimal `json:"paid_salary"`
	RemainingSalary decimal.Decimal `json:"remaining_salary"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NotificationListFilter represents filter options for a user's inbox
type NotificationListFilter struct {
	Page     int
	PageSize int
}

// NotificationResponse represents one inbox entry
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	ShopID   uuid.UUID `json:"shop_id" binding:"required"`
	Phone    string    `json:"phone" binding:"required"`
	Password string    `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// ToUserResponse converts a user to its response representation
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		ShopID:          user.ShopID,
		Name:            user.Name,
		Phone:           user.Phone,
		Email:           user.Email,
		Role:            string(user.Role),
		IsActive:        user.IsActive,
		ExternalUID:     user.ExternalUID,
		TotalEarnings:   user.TotalEarnings,
		PaidSalary:      user.PaidSalary,
		RemainingSalary: user.RemainingSalary(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// ToUserResponses converts a slice of users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// ToNotificationResponses converts inbox entries
func ToNotificationResponses(notifications []identity.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}
