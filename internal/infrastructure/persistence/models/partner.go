package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client aggregate.
type ClientModel struct {
	ShopAggregateModel
	Name        string `gorm:"type:varchar(200);not null"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50);index"`
	Email       string `gorm:"type:varchar(200);index"`
	Address     string `gorm:"type:text"`
	Notes       string `gorm:"type:text"`

	TotalPaymentsDue decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayments decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LifetimeOrders   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client aggregate.
// The payment history is loaded separately.
func (m *ClientModel) ToDomain() *partner.Client {
	client := &partner.Client{
		Name:             m.Name,
		ContactName:      m.ContactName,
		Phone:            m.Phone,
		Email:            m.Email,
		Address:          m.Address,
		Notes:            m.Notes,
		TotalPaymentsDue: m.TotalPaymentsDue,
		ReceivedPayments: m.ReceivedPayments,
		LifetimeOrders:   m.LifetimeOrders,
	}
	m.PopulateShopAggregateRoot(&client.ShopAggregateRoot)
	return client
}

// FromDomain populates the persistence model from a domain Client aggregate.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainShopAggregateRoot(c.ShopAggregateRoot)
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Notes = c.Notes
	m.TotalPaymentsDue = c.TotalPaymentsDue
	m.ReceivedPayments = c.ReceivedPayments
	m.LifetimeOrders = c.LifetimeOrders
}

// ClientModelFromDomain creates a new persistence model from a domain Client aggregate.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// PaymentRecordModel is the persistence model for a client's payment history entry.
type PaymentRecordModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentRecordModel) TableName() string {
	return "client_payment_records"
}

// ToDomain converts the persistence model to a domain PaymentRecord.
func (m *PaymentRecordModel) ToDomain() partner.PaymentRecord {
	return partner.PaymentRecord{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Date:      m.Date,
		Amount:    m.Amount,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// PaymentRecordModelFromDomain creates a new persistence model from a domain PaymentRecord.
func PaymentRecordModelFromDomain(r *partner.PaymentRecord) *PaymentRecordModel {
	return &PaymentRecordModel{
		ID:        r.ID,
		ClientID:  r.ClientID,
		Date:      r.Date,
		Amount:    r.Amount,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}
