package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/payroll"
)

// SalaryModel is the persistence model for one salary ledger entry.
type SalaryModel struct {
	ShopAggregateModel
	UserID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	UserName string             `gorm:"type:varchar(100)"`
	Amount   decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Type     payroll.SalaryType `gorm:"type:varchar(20);not null;index"`

	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index"`

	WorkDate time.Time `gorm:"not null"`
	IsPaid   bool      `gorm:"not null;default:false;index"`
	PaidDate *time.Time
	Notes    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SalaryModel) TableName() string {
	return "salaries"
}

// ToDomain converts the persistence model to a domain Salary aggregate.
func (m *SalaryModel) ToDomain() *payroll.Salary {
	salary := &payroll.Salary{
		UserID:    m.UserID,
		UserName:  m.UserName,
		Amount:    m.Amount,
		Type:      m.Type,
		OrderID:   m.OrderID,
		ProjectID: m.ProjectID,
		WorkDate:  m.WorkDate,
		IsPaid:    m.IsPaid,
		PaidDate:  m.PaidDate,
		Notes:     m.Notes,
	}
	m.PopulateShopAggregateRoot(&salary.ShopAggregateRoot)
	return salary
}

// FromDomain populates the persistence model from a domain Salary aggregate.
func (m *SalaryModel) FromDomain(s *payroll.Salary) {
	m.FromDomainShopAggregateRoot(s.ShopAggregateRoot)
	m.UserID = s.UserID
	m.UserName = s.UserName
	m.Amount = s.Amount
	m.Type = s.Type
	m.OrderID = s.OrderID
	m.ProjectID = s.ProjectID
	m.WorkDate = s.WorkDate
	m.IsPaid = s.IsPaid
	m.PaidDate = s.PaidDate
	m.Notes = s.Notes
}

// SalaryModelFromDomain creates a new persistence model from a domain Salary aggregate.
func SalaryModelFromDomain(s *payroll.Salary) *SalaryModel {
	m := &SalaryModel{}
	m.FromDomain(s)
	return m
}
