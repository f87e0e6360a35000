package partner

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// PaymentStatus summarizes how much of a client's balance has been settled.
// It is a pure function of the two stored counters and is never persisted.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Client represents a customer of a shop. It is the aggregate root for
// client-related operations and carries the running payment counters that
// order and project mutations adjust incrementally.
type Client struct {
	shared.ShopAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50);index"`
	Email       string `gorm:"type:varchar(200);index"`
	Address     string `gorm:"type:text"`
	Notes       string `gorm:"type:text"`

	// Authoritative running counters. PendingPayments and PaymentStatus are
	// derived from these and never stored independently.
	TotalPaymentsDue decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayments decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LifetimeOrders   int             `gorm:"not null;default:0"`

	PaymentHistory []PaymentRecord `gorm:"-"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// PaymentRecord is one append-only entry in a client's payment history log.
type PaymentRecord struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
}

// NewPaymentRecord creates a payment history entry for a client.
func NewPaymentRecord(clientID uuid.UUID, date time.Time, amount decimal.Decimal, notes string) (*PaymentRecord, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &PaymentRecord{
		ID:        uuid.New(),
		ClientID:  clientID,
		Date:      date,
		Amount:    amount,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}

// NewClient creates a new client with required fields
func NewClient(shopID uuid.UUID, name string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}

	client := &Client{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              name,
		TotalPaymentsDue:  decimal.Zero,
		ReceivedPayments:  decimal.Zero,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's basic information
func (c *Client) Update(name string) error {
	if err := validateClientName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// SetContact sets the client's contact information
func (c *Client) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the client's address
func (c *Client) SetAddress(address string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets the client's notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// PendingPayments returns the outstanding balance, floored at zero.
func (c *Client) PendingPayments() decimal.Decimal {
	pending := c.TotalPaymentsDue.Sub(c.ReceivedPayments)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// PaymentStatus derives the settlement status from the two counters.
func (c *Client) PaymentStatus() PaymentStatus {
	if c.TotalPaymentsDue.GreaterThan(decimal.Zero) && c.PendingPayments().IsZero() {
		return PaymentStatusPaid
	}
	if c.ReceivedPayments.GreaterThan(decimal.Zero) {
		return PaymentStatusPartial
	}
	return PaymentStatusPending
}

// ApplyRecalculatedTotals overwrites the running counters with totals
// recomputed from the client's orders and projects. This is the
// reconciliation path; the incremental path must agree with it when all
// mutations have been delivered.
func (c *Client) ApplyRecalculatedTotals(totalDue, totalReceived decimal.Decimal) error {
	if totalDue.IsNegative() || totalReceived.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Recalculated totals cannot be negative")
	}

	oldDue := c.TotalPaymentsDue
	oldReceived := c.ReceivedPayments
	c.TotalPaymentsDue = totalDue
	c.ReceivedPayments = totalReceived
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientBalanceRecalculatedEvent(c, oldDue, oldReceived))

	return nil
}

// Validation functions

func validateClientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
