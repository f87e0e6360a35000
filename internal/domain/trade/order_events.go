package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeOrder          = "Order"
	AggregateTypeEditingProject = "EditingProject"
)

// Event type constants
const (
	EventTypeOrderCreated         = "OrderCreated"
	EventTypeOrderCompleted       = "OrderCompleted"
	EventTypeOrderPaymentRecorded = "OrderPaymentRecorded"
	EventTypeOrderDeleted         = "OrderDeleted"

	EventTypeProjectCreated   = "EditingProjectCreated"
	EventTypeProjectUpdated   = "EditingProjectUpdated"
	EventTypeProjectCompleted = "EditingProjectCompleted"
	EventTypeProjectDeleted   = "EditingProjectDeleted"
)

// OrderCreatedEvent is published when a new order is persisted
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID, order.ShopID),
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		TotalAmount:     order.TotalAmount,
	}
}

// OrderCompletedEvent is published when an order reaches its terminal state
type OrderCompletedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderCompletedEvent creates a new OrderCompletedEvent
func NewOrderCompletedEvent(order *Order) *OrderCompletedEvent {
	return &OrderCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCompleted, AggregateTypeOrder, order.ID, order.ShopID),
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		TotalAmount:     order.TotalAmount,
	}
}

// OrderPaymentRecordedEvent is published when the received payment changes
type OrderPaymentRecordedEvent struct {
	shared.BaseDomainEvent
	OrderID          uuid.UUID       `json:"order_id"`
	ReceivedPayment  decimal.Decimal `json:"received_payment"`
	RemainingPayment decimal.Decimal `json:"remaining_payment"`
}

// NewOrderPaymentRecordedEvent creates a new OrderPaymentRecordedEvent
func NewOrderPaymentRecordedEvent(order *Order) *OrderPaymentRecordedEvent {
	return &OrderPaymentRecordedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeOrderPaymentRecorded, AggregateTypeOrder, order.ID, order.ShopID),
		OrderID:          order.ID,
		ReceivedPayment:  order.ReceivedPayment,
		RemainingPayment: order.RemainingPayment(),
	}
}

// OrderDeletedEvent is published after an order and its ledger footprint
// have been removed
type OrderDeletedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewOrderDeletedEvent creates a new OrderDeletedEvent
func NewOrderDeletedEvent(order *Order) *OrderDeletedEvent {
	return &OrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDeleted, AggregateTypeOrder, order.ID, order.ShopID),
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		TotalAmount:     order.TotalAmount,
	}
}

// ProjectCreatedEvent is published when a new editing project is persisted
type ProjectCreatedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
	EditorID  uuid.UUID `json:"editor_id"`
}

// NewProjectCreatedEvent creates a new ProjectCreatedEvent
func NewProjectCreatedEvent(project *EditingProject) *ProjectCreatedEvent {
	return &ProjectCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectCreated, AggregateTypeEditingProject, project.ID, project.ShopID),
		ProjectID:       project.ID,
		EditorID:        project.EditorID,
	}
}

// ProjectUpdatedEvent is published when a project's amounts or details change
type ProjectUpdatedEvent struct {
	shared.BaseDomainEvent
	ProjectID        uuid.UUID       `json:"project_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// NewProjectUpdatedEvent creates a new ProjectUpdatedEvent
func NewProjectUpdatedEvent(project *EditingProject) *ProjectUpdatedEvent {
	return &ProjectUpdatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeProjectUpdated, AggregateTypeEditingProject, project.ID, project.ShopID),
		ProjectID:        project.ID,
		TotalAmount:      project.TotalAmount,
		CommissionAmount: project.CommissionAmount,
	}
}

// ProjectCompletedEvent is published when a project reaches its terminal state
type ProjectCompletedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
	EditorID  uuid.UUID `json:"editor_id"`
}

// NewProjectCompletedEvent creates a new ProjectCompletedEvent
func NewProjectCompletedEvent(project *EditingProject) *ProjectCompletedEvent {
	return &ProjectCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectCompleted, AggregateTypeEditingProject, project.ID, project.ShopID),
		ProjectID:       project.ID,
		EditorID:        project.EditorID,
	}
}

// ProjectDeletedEvent is published when a project is deleted
type ProjectDeletedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
}

// NewProjectDeletedEvent creates a new ProjectDeletedEvent
func NewProjectDeletedEvent(project *EditingProject) *ProjectDeletedEvent {
	return &ProjectDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectDeleted, AggregateTypeEditingProject, project.ID, project.ShopID),
		ProjectID:       project.ID,
	}
}
