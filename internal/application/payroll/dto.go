package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/payroll"
)

// CreateBonusRequest represents a request to create a manual bonus entry
type CreateBonusRequest struct {
	UserID   uuid.UUID       `json:"user_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	WorkDate *time.Time      `json:"work_date"`
	Notes    string          `json:"notes"`
}

// SalaryListFilter represents filter options for listing ledger entries
type SalaryListFilter struct {
	Page     int
	PageSize int
	UserID   *uuid.UUID
	Unpaid   bool
}

// SalaryResponse represents a ledger entry in API responses
type SalaryResponse struct {
	ID        uuid.UUID       `json:"id"`
	ShopID    uuid.UUID       `json:"shop_id"`
	UserID    uuid.UUID       `json:"user_id"`
	UserName  string          `json:"user_name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	OrderID   *uuid.UUID      `json:"order_id,omitempty"`
	ProjectID *uuid.UUID      `json:"project_id,omitempty"`
	WorkDate  time.Time       `json:"work_date"`
	IsPaid    bool            `json:"is_paid"`
	PaidDate  *time.Time      `json:"paid_date,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// EmployeeSummaryResponse represents an employee's earnings summary
type EmployeeSummaryResponse struct {
	UserID          uuid.UUID        `json:"user_id"`
	UserName        string           `json:"user_name"`
	Role            string           `json:"role"`
	TotalEarnings   decimal.Decimal  `json:"total_earnings"`
	PaidSalary      decimal.Decimal  `json:"paid_salary"`
	RemainingSalary decimal.Decimal  `json:"remaining_salary"`
	Entries         []SalaryResponse `json:"entries"`
}

// ToSalaryResponse converts a ledger entry to its response representation
func ToSalaryResponse(salary *payroll.Salary) SalaryResponse {
	return SalaryResponse{
		ID:        salary.ID,
		ShopID:    salary.ShopID,
		UserID:    salary.UserID,
		UserName:  salary.UserName,
		Amount:    salary.Amount,
		Type:      string(salary.Type),
		OrderID:   salary.OrderID,
		ProjectID: salary.ProjectID,
		WorkDate:  salary.WorkDate,
		IsPaid:    salary.IsPaid,
		PaidDate:  salary.PaidDate,
		Notes:     salary.Notes,
	}
}

// ToSalaryResponses converts a slice of ledger entries
func ToSalaryResponses(salaries []payroll.Salary) []SalaryResponse {
	responses := make([]SalaryResponse, len(salaries))
	for i := range salaries {
		responses[i] = ToSalaryResponse(&salaries[i])
	}
	return responses
}
