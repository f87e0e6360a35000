package partner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeClient = "Client"

// Event type constants
const (
	EventTypeClientCreated             = "ClientCreated"
	EventTypeClientUpdated             = "ClientUpdated"
	EventTypeClientBalanceRecalculated = "ClientBalanceRecalculated"
	EventTypeClientDeleted             = "ClientDeleted"
)

// ClientCreatedEvent is published when a new client is registered
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, client.ID, client.ShopID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}

// ClientUpdatedEvent is published when a client's details change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(client *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, client.ID, client.ShopID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}

// ClientBalanceRecalculatedEvent is published when the reconciliation path
// overwrites a client's running counters
type ClientBalanceRecalculatedEvent struct {
	shared.BaseDomainEvent
	ClientID    uuid.UUID       `json:"client_id"`
	OldDue      decimal.Decimal `json:"old_due"`
	OldReceived decimal.Decimal `json:"old_received"`
	NewDue      decimal.Decimal `json:"new_due"`
	NewReceived decimal.Decimal `json:"new_received"`
}

// NewClientBalanceRecalculatedEvent creates a new ClientBalanceRecalculatedEvent
func NewClientBalanceRecalculatedEvent(client *Client, oldDue, oldReceived decimal.Decimal) *ClientBalanceRecalculatedEvent {
	return &ClientBalanceRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientBalanceRecalculated, AggregateTypeClient, client.ID, client.ShopID),
		ClientID:        client.ID,
		OldDue:          oldDue,
		OldReceived:     oldReceived,
		NewDue:          client.TotalPaymentsDue,
		NewReceived:     client.ReceivedPayments,
	}
}

// ClientDeletedEvent is published when a client is explicitly deleted.
// Deletion does not cascade to the client's orders or projects.
type ClientDeletedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientDeletedEvent creates a new ClientDeletedEvent
func NewClientDeletedEvent(client *Client) *ClientDeletedEvent {
	return &ClientDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientDeleted, AggregateTypeClient, client.ID, client.ShopID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}
