package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// PaymentTotals is the aggregation result used by the client balance
// reconciliation path: the sums of totalAmount and receivedPayment over a
// client's orders or projects.
type PaymentTotals struct {
	TotalAmount     decimal.Decimal
	ReceivedPayment decimal.Decimal
}

// Add returns the element-wise sum of two totals
func (t PaymentTotals) Add(other PaymentTotals) PaymentTotals {
	return PaymentTotals{
		TotalAmount:     t.TotalAmount.Add(other.TotalAmount),
		ReceivedPayment: t.ReceivedPayment.Add(other.ReceivedPayment),
	}
}

// OrderRepository defines the persistence interface for Order aggregates.
// Save and FindByID* handle the assignment lists together with the order.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*Order, error)
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Order, error)

	// FindByAssignee returns orders where the user appears in either
	// assignment list.
	FindByAssignee(ctx context.Context, shopID, userID uuid.UUID) ([]Order, error)

	FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status Status) ([]Order, error)
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
	CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status Status) (int64, error)
	CountCreatedSince(ctx context.Context, shopID uuid.UUID, since time.Time) (int64, error)
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumPaymentsByClient aggregates totalAmount and receivedPayment over
	// all of a client's orders in the store.
	SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (PaymentTotals, error)
}

// ProjectRepository defines the persistence interface for EditingProject
// aggregates.
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EditingProject, error)
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*EditingProject, error)
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]EditingProject, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]EditingProject, error)
	FindByEditor(ctx context.Context, shopID, editorID uuid.UUID) ([]EditingProject, error)
	FindByStatusForShop(ctx context.Context, shopID uuid.UUID, status Status) ([]EditingProject, error)
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
	CountByStatusForShop(ctx context.Context, shopID uuid.UUID, status Status) (int64, error)
	Save(ctx context.Context, project *EditingProject) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumPaymentsByClient aggregates totalAmount and receivedPayment over
	// all of a client's projects in the store.
	SumPaymentsByClient(ctx context.Context, clientID uuid.UUID) (PaymentTotals, error)
}
