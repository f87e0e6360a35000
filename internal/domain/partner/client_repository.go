package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// ClientRepository defines the persistence interface for Client aggregates.
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*Client, error)
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]Client, error)
	CountForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByPhone(ctx context.Context, shopID uuid.UUID, phone string) (bool, error)

	// FindWithPendingBalance returns the shop's clients whose received
	// payments trail their payments due.
	FindWithPendingBalance(ctx context.Context, shopID uuid.UUID) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	DeleteForShop(ctx context.Context, shopID, id uuid.UUID) error

	// AdjustBalance atomically increments the client's running counters by
	// the given deltas in a single UPDATE statement. Deltas may be negative.
	// There must be no read-modify-write window.
	AdjustBalance(ctx context.Context, shopID, clientID uuid.UUID, deltaDue, deltaReceived decimal.Decimal) error

	// AdjustLifetimeOrders atomically increments the lifetime order counter.
	AdjustLifetimeOrders(ctx context.Context, shopID, clientID uuid.UUID, delta int) error

	// AppendPaymentRecord appends one entry to the client's payment history.
	AppendPaymentRecord(ctx context.Context, record *PaymentRecord) error

	// FindPaymentRecords returns the client's payment history, newest first.
	FindPaymentRecords(ctx context.Context, clientID uuid.UUID) ([]PaymentRecord, error)
}
