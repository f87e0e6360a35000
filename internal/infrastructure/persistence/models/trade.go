package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/trade"
)

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	ShopAggregateModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	ClientID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientName string     `gorm:"type:varchar(200)"`

	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayment decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          trade.Status    `gorm:"type:varchar(20);not null;index"`

	OrderDate      time.Time `gorm:"not null;index"`
	CompletionDate *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order aggregate.
// The assignment lists are loaded separately.
func (m *OrderModel) ToDomain() *trade.Order {
	order := &trade.Order{
		Name:            m.Name,
		Description:     m.Description,
		ClientID:        m.ClientID,
		ClientName:      m.ClientName,
		TotalAmount:     m.TotalAmount,
		ReceivedPayment: m.ReceivedPayment,
		Status:          m.Status,
		OrderDate:       m.OrderDate,
		CompletionDate:  m.CompletionDate,
		Workers:         make([]trade.Assignment, 0),
		Transporters:    make([]trade.Assignment, 0),
	}
	m.PopulateShopAggregateRoot(&order.ShopAggregateRoot)
	return order
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainShopAggregateRoot(o.ShopAggregateRoot)
	m.Name = o.Name
	m.Description = o.Description
	m.ClientID = o.ClientID
	m.ClientName = o.ClientName
	m.TotalAmount = o.TotalAmount
	m.ReceivedPayment = o.ReceivedPayment
	m.Status = o.Status
	m.OrderDate = o.OrderDate
	m.CompletionDate = o.CompletionDate
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// AssignmentModel is the persistence model for one order assignment.
type AssignmentModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	UserName  string               `gorm:"type:varchar(100)"`
	Role      trade.AssignmentRole `gorm:"type:varchar(20);not null"`
	Payment   decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return "order_assignments"
}

// ToDomain converts the persistence model to a domain Assignment.
func (m *AssignmentModel) ToDomain() trade.Assignment {
	return trade.Assignment{
		ID:        m.ID,
		OrderID:   m.OrderID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Role:      m.Role,
		Payment:   m.Payment,
		CreatedAt: m.CreatedAt,
	}
}

// AssignmentModelFromDomain creates a new persistence model from a domain Assignment.
func AssignmentModelFromDomain(a *trade.Assignment) *AssignmentModel {
	return &AssignmentModel{
		ID:        a.ID,
		OrderID:   a.OrderID,
		UserID:    a.UserID,
		UserName:  a.UserName,
		Role:      a.Role,
		Payment:   a.Payment,
		CreatedAt: a.CreatedAt,
	}
}

// EditingProjectModel is the persistence model for the EditingProject aggregate.
type EditingProjectModel struct {
	ShopAggregateModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	ClientID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientName string     `gorm:"type:varchar(200)"`

	EditorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EditorName string    `gorm:"type:varchar(100)"`

	TotalAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayment      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CommissionPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CommissionAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Status    trade.Status `gorm:"type:varchar(20);not null;index"`
	StartDate time.Time    `gorm:"not null"`
	EndDate   *time.Time
}

// TableName returns the table name for GORM
func (EditingProjectModel) TableName() string {
	return "editing_projects"
}

// ToDomain converts the persistence model to a domain EditingProject aggregate.
func (m *EditingProjectModel) ToDomain() *trade.EditingProject {
	project := &trade.EditingProject{
		Name:                 m.Name,
		Description:          m.Description,
		ClientID:             m.ClientID,
		ClientName:           m.ClientName,
		EditorID:             m.EditorID,
		EditorName:           m.EditorName,
		TotalAmount:          m.TotalAmount,
		ReceivedPayment:      m.ReceivedPayment,
		CommissionPercentage: m.CommissionPercentage,
		CommissionAmount:     m.CommissionAmount,
		Status:               m.Status,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
	}
	m.PopulateShopAggregateRoot(&project.ShopAggregateRoot)
	return project
}

// FromDomain populates the persistence model from a domain EditingProject aggregate.
func (m *EditingProjectModel) FromDomain(p *trade.EditingProject) {
	m.FromDomainShopAggregateRoot(p.ShopAggregateRoot)
	m.Name = p.Name
	m.Description = p.Description
	m.ClientID = p.ClientID
	m.ClientName = p.ClientName
	m.EditorID = p.EditorID
	m.EditorName = p.EditorName
	m.TotalAmount = p.TotalAmount
	m.ReceivedPayment = p.ReceivedPayment
	m.CommissionPercentage = p.CommissionPercentage
	m.CommissionAmount = p.CommissionAmount
	m.Status = p.Status
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
}

// EditingProjectModelFromDomain creates a new persistence model from a domain EditingProject aggregate.
func EditingProjectModelFromDomain(p *trade.EditingProject) *EditingProjectModel {
	m := &EditingProjectModel{}
	m.FromDomain(p)
	return m
}
