package payroll

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeSalary = "Salary"

// Event type constants
const (
	EventTypeSalaryCreated = "SalaryCreated"
	EventTypeSalaryPaid    = "SalaryPaid"
	EventTypeSalaryDeleted = "SalaryDeleted"
)

// SalaryCreatedEvent is published when a ledger entry is created
type SalaryCreatedEvent struct {
	shared.BaseDomainEvent
	SalaryID uuid.UUID       `json:"salary_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Type     SalaryType      `json:"type"`
}

// NewSalaryCreatedEvent creates a new SalaryCreatedEvent
func NewSalaryCreatedEvent(salary *Salary) *SalaryCreatedEvent {
	return &SalaryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalaryCreated, AggregateTypeSalary, salary.ID, salary.ShopID),
		SalaryID:        salary.ID,
		UserID:          salary.UserID,
		Amount:          salary.Amount,
		Type:            salary.Type,
	}
}

// SalaryPaidEvent is published when a ledger entry is released to the
// employee
type SalaryPaidEvent struct {
	shared.BaseDomainEvent
	SalaryID uuid.UUID       `json:"salary_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewSalaryPaidEvent creates a new SalaryPaidEvent
func NewSalaryPaidEvent(salary *Salary) *SalaryPaidEvent {
	return &SalaryPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalaryPaid, AggregateTypeSalary, salary.ID, salary.ShopID),
		SalaryID:        salary.ID,
		UserID:          salary.UserID,
		Amount:          salary.Amount,
	}
}

// SalaryDeletedEvent is published when ledger entries are removed, usually
// because their originating order was deleted
type SalaryDeletedEvent struct {
	shared.BaseDomainEvent
	SalaryID uuid.UUID       `json:"salary_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewSalaryDeletedEvent creates a new SalaryDeletedEvent
func NewSalaryDeletedEvent(salary *Salary) *SalaryDeletedEvent {
	return &SalaryDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalaryDeleted, AggregateTypeSalary, salary.ID, salary.ShopID),
		SalaryID:        salary.ID,
		UserID:          salary.UserID,
		Amount:          salary.Amount,
	}
}
