package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Role determines what a user does in a shop and which salary types
// they can earn.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleWorker      Role = "worker"
	RoleTransporter Role = "transporter"
	RoleEditor      Role = "editor"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a member of a shop: the owner or an employee. Employees
// carry running earnings counters that order completion and salary payment
// adjust incrementally.
type User struct {
	shared.ShopAggregateRoot
	Name         string `gorm:"type:varchar(100);not null"`
	Phone        string `gorm:"type:varchar(50);index"`
	Email        string `gorm:"type:varchar(200);index"`
	Role         Role   `gorm:"type:varchar(20);not null;index"`
	PasswordHash string `gorm:"type:varchar(255)"`
	IsActive     bool   `gorm:"not null;default:true"`

	// ExternalUID links the user to the external identity provider. Requests
	// authenticated by the provider are resolved to a user through this value.
	ExternalUID string `gorm:"type:varchar(128);uniqueIndex:idx_users_external_uid,where:external_uid <> ''"`

	// Authoritative running counters. RemainingSalary is derived from these
	// and never stored independently.
	TotalEarnings decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidSalary    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with required fields
func NewUser(shopID uuid.UUID, name string, role Role) (*User, error) {
	if err := validateUserName(name); err != nil {
		return nil, err
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	user := &User{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              strings.TrimSpace(name),
		Role:              role,
		IsActive:          true,
		TotalEarnings:     decimal.Zero,
		PaidSalary:        decimal.Zero,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// Update updates the user's basic information
func (u *User) Update(name string, role Role) error {
	if err := validateUserName(name); err != nil {
		return err
	}
	if err := validateRole(role); err != nil {
		return err
	}

	u.Name = strings.TrimSpace(name)
	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserUpdatedEvent(u))

	return nil
}

// SetContact sets the user's contact information
func (u *User) SetContact(phone, email string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if email != "" {
		if err := validateUserEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}

	u.Phone = strings.TrimSpace(phone)
	u.Email = email
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// VerifyPassword checks whether the given password matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// LinkExternalUID attaches the identity provider's UID to the user.
func (u *User) LinkExternalUID(uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return shared.NewDomainError("INVALID_EXTERNAL_UID", "External UID cannot be empty")
	}
	if len(uid) > 128 {
		return shared.NewDomainError("INVALID_EXTERNAL_UID", "External UID cannot exceed 128 characters")
	}

	u.ExternalUID = uid
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Deactivate marks the user as inactive. Inactive users keep their counters
// and salary history but can no longer be assigned to orders.
func (u *User) Deactivate() {
	if !u.IsActive {
		return
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserDeactivatedEvent(u))
}

// Activate marks the user as active again
func (u *User) Activate() {
	if u.IsActive {
		return
	}
	u.IsActive = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// IsOwner reports whether the user owns the shop
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsEmployee reports whether the user earns salaries
func (u *User) IsEmployee() bool {
	switch u.Role {
	case RoleWorker, RoleTransporter, RoleEditor:
		return true
	}
	return false
}

// RemainingSalary returns the unpaid portion of the user's earnings.
func (u *User) RemainingSalary() decimal.Decimal {
	return u.TotalEarnings.Sub(u.PaidSalary)
}

// ApplyRecalculatedEarnings overwrites the running counters with totals
// recomputed from the user's salary records. This is the reconciliation
// path for employee earnings.
func (u *User) ApplyRecalculatedEarnings(totalEarnings, paidSalary decimal.Decimal) error {
	if totalEarnings.IsNegative() || paidSalary.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Recalculated earnings cannot be negative")
	}

	u.TotalEarnings = totalEarnings
	u.PaidSalary = paidSalary
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserEarningsRecalculatedEvent(u))

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Validation functions

func validateUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "User name cannot exceed 100 characters")
	}
	return nil
}

func validateRole(role Role) error {
	switch role {
	case RoleOwner, RoleWorker, RoleTransporter, RoleEditor:
		return nil
	}
	return shared.NewDomainError("INVALID_ROLE", "Role must be owner, worker, transporter or editor")
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateUserEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
