package payroll

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// EarningsTotals is the aggregation result used by the employee earnings
// reconciliation path: the sums of all and of paid ledger amounts.
type EarningsTotals struct {
	TotalEarnings decimal.Decimal
	PaidSalary    decimal.Decimal
}

// SalaryRepository defines the persistence interface for the salary ledger.
type SalaryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Salary, error)
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*Salary, error)
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Salary, error)
	FindByUser(ctx context.Context, shopID, userID uuid.UUID, filter shared.Filter) ([]Salary, error)

	// FindByOrder returns all ledger entries referencing the order.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Salary, error)

	// FindUnpaidByOrder returns the entries the completion cascade pays out.
	// The unpaid filter here is load-bearing: without it a repeated
	// completion would double-increment the employees' paid counters.
	FindUnpaidByOrder(ctx context.Context, orderID uuid.UUID) ([]Salary, error)

	FindUnpaidByUser(ctx context.Context, shopID, userID uuid.UUID) ([]Salary, error)
	FindUnpaidForShop(ctx context.Context, shopID uuid.UUID) ([]Salary, error)
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, salary *Salary) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByOrder removes every entry referencing the order and returns
	// the deleted entries so the caller can reverse their counter
	// increments.
	DeleteByOrder(ctx context.Context, orderID uuid.UUID) ([]Salary, error)

	// DeleteByProject is DeleteByOrder for project-derived entries.
	DeleteByProject(ctx context.Context, projectID uuid.UUID) ([]Salary, error)

	// SumByUser aggregates the user's total and paid ledger amounts.
	SumByUser(ctx context.Context, shopID, userID uuid.UUID) (EarningsTotals, error)
}
