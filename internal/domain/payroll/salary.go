package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// SalaryType classifies what kind of work a ledger entry pays for
type SalaryType string

const (
	SalaryTypeOrderWork     SalaryType = "order_work"
	SalaryTypeTransportWork SalaryType = "transport_work"
	SalaryTypeEditingWork   SalaryType = "editing_work"
	SalaryTypeBonus         SalaryType = "bonus"
)

// IsValid checks if the salary type is known
func (t SalaryType) IsValid() bool {
	switch t {
	case SalaryTypeOrderWork, SalaryTypeTransportWork, SalaryTypeEditingWork, SalaryTypeBonus:
		return true
	}
	return false
}

// Salary is one line in the shop's salary ledger: a single payment owed to
// one employee for one piece of work. Entries derived from an order or a
// project carry a back-reference to it; that reference is what completion
// and deletion cascades query by.
type Salary struct {
	shared.ShopAggregateRoot
	UserID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserName string          `gorm:"type:varchar(100)"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Type     SalaryType      `gorm:"type:varchar(20);not null;index"`

	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index"`

	WorkDate time.Time `gorm:"not null"`
	IsPaid   bool      `gorm:"not null;default:false;index"`
	PaidDate *time.Time
	Notes    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Salary) TableName() string {
	return "salaries"
}

// NewSalary creates an unpaid ledger entry
func NewSalary(shopID, userID uuid.UUID, userName string, amount decimal.Decimal, salaryType SalaryType, workDate time.Time) (*Salary, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Employee ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Salary amount must be positive")
	}
	if !salaryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SALARY_TYPE", "Unknown salary type")
	}
	if workDate.IsZero() {
		workDate = time.Now()
	}

	salary := &Salary{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		UserID:            userID,
		UserName:          userName,
		Amount:            amount,
		Type:              salaryType,
		WorkDate:          workDate,
	}

	salary.AddDomainEvent(NewSalaryCreatedEvent(salary))

	return salary, nil
}

// NewOrderSalary creates an unpaid ledger entry derived from an order
// assignment
func NewOrderSalary(shopID, userID uuid.UUID, userName string, amount decimal.Decimal, salaryType SalaryType, orderID uuid.UUID, workDate time.Time) (*Salary, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}

	salary, err := NewSalary(shopID, userID, userName, amount, salaryType, workDate)
	if err != nil {
		return nil, err
	}

	salary.OrderID = &orderID
	return salary, nil
}

// NewProjectSalary creates an unpaid editing_work entry derived from a
// project's editor commission
func NewProjectSalary(shopID, userID uuid.UUID, userName string, amount decimal.Decimal, projectID uuid.UUID, workDate time.Time) (*Salary, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}

	salary, err := NewSalary(shopID, userID, userName, amount, SalaryTypeEditingWork, workDate)
	if err != nil {
		return nil, err
	}

	salary.ProjectID = &projectID
	return salary, nil
}

// MarkPaid flips the entry to paid and stamps the paid date. An entry that
// is already paid is rejected: the caller's already-paid filter plus this
// guard is what keeps a repeated payout from double-counting.
func (s *Salary) MarkPaid() error {
	if s.IsPaid {
		return shared.ErrAlreadyPaid
	}

	now := time.Now()
	s.IsPaid = true
	s.PaidDate = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSalaryPaidEvent(s))

	return nil
}

// SetNotes attaches free-form notes to the entry
func (s *Salary) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
