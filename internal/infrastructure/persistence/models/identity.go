package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	ShopAggregateModel
	Name         string        `gorm:"type:varchar(100);not null"`
	Phone        string        `gorm:"type:varchar(50);index"`
	Email        string        `gorm:"type:varchar(200);index"`
	Role         identity.Role `gorm:"type:varchar(20);not null;index"`
	PasswordHash string        `gorm:"type:varchar(255)"`
	IsActive     bool          `gorm:"not null;default:true"`
	ExternalUID  string        `gorm:"type:varchar(128);uniqueIndex:idx_users_external_uid,where:external_uid <> ''"`

	TotalEarnings decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidSalary    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User aggregate.
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		Role:          m.Role,
		PasswordHash:  m.PasswordHash,
		IsActive:      m.IsActive,
		ExternalUID:   m.ExternalUID,
		TotalEarnings: m.TotalEarnings,
		PaidSalary:    m.PaidSalary,
	}
	m.PopulateShopAggregateRoot(&user.ShopAggregateRoot)
	return user
}

// FromDomain populates the persistence model from a domain User aggregate.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainShopAggregateRoot(u.ShopAggregateRoot)
	m.Name = u.Name
	m.Phone = u.Phone
	m.Email = u.Email
	m.Role = u.Role
	m.PasswordHash = u.PasswordHash
	m.IsActive = u.IsActive
	m.ExternalUID = u.ExternalUID
	m.TotalEarnings = u.TotalEarnings
	m.PaidSalary = u.PaidSalary
}

// UserModelFromDomain creates a new persistence model from a domain User aggregate.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// NotificationModel is the persistence model for a user's inbox entry.
type NotificationModel struct {
	ID        uuid.UUID                 `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Kind      identity.NotificationKind `gorm:"type:varchar(30);not null"`
	Title     string                    `gorm:"type:varchar(200);not null"`
	Message   string                    `gorm:"type:text"`
	IsRead    bool                      `gorm:"not null;default:false;index"`
	CreatedAt time.Time                 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification.
func (m *NotificationModel) ToDomain() identity.Notification {
	return identity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      m.Kind,
		Title:     m.Title,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification.
func NotificationModelFromDomain(n *identity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Kind:      n.Kind,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
