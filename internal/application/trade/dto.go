package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/trade"
)

// =============================================================================
// Order DTOs
// =============================================================================

// AssignmentRequest represents one assignee on an order create request
type AssignmentRequest struct {
	UserID  uuid.UUID       `json:"user_id" binding:"required"`
	Payment decimal.Decimal `json:"payment"`
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	Name            string              `json:"name" binding:"required,min=1,max=200"`
	Description     string              `json:"description"`
	ClientID        *uuid.UUID          `json:"client_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount" binding:"required"`
	ReceivedPayment decimal.Decimal     `json:"received_payment"`
	OrderDate       *time.Time          `json:"order_date"`
	Workers         []AssignmentRequest `json:"workers" binding:"dive"`
	Transporters    []AssignmentRequest `json:"transporters" binding:"dive"`
}

// UpdateOrderStatusRequest represents a status transition request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

// UpdatePaymentRequest represents a received-payment update
type UpdatePaymentRequest struct {
	ReceivedPayment decimal.Decimal `json:"received_payment" binding:"required"`
}

// OrderListFilter represents filter options for listing orders
type OrderListFilter struct {
	Page       int
	PageSize   int
	Status     string
	ClientID   *uuid.UUID
	AssigneeID *uuid.UUID
	Search     string
}

// AssignmentResponse represents one assignee in API responses
type AssignmentResponse struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"user_id"`
	UserName string          `json:"user_name"`
	Role     string          `json:"role"`
	Payment  decimal.Decimal `json:"payment"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID               uuid.UUID            `json:"id"`
	ShopID           uuid.UUID            `json:"shop_id"`
	Name             string               `json:"name"`
	Description      string               `json:"description,omitempty"`
	ClientID         *uuid.UUID           `json:"client_id,omitempty"`
	ClientName       string               `json:"client_name"`
	TotalAmount      decimal.Decimal      `json:"total_amount"`
	ReceivedPayment  decimal.Decimal      `json:"received_payment"`
	RemainingPayment decimal.Decimal      `json:"remaining_payment"`
	Status           string               `json:"status"`
	OrderDate        time.Time            `json:"order_date"`
	CompletionDate   *time.Time           `json:"completion_date,omitempty"`
	Workers          []AssignmentResponse `json:"workers"`
	Transporters     []AssignmentResponse `json:"transporters"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// OrderCascadeResponse pairs an order with the outcome of its cascade
type OrderCascadeResponse struct {
	Order   OrderResponse `json:"order"`
	Cascade CascadeResult `json:"cascade"`
}

// DeleteOrderResponse reports the outcome of an order deletion cascade
type DeleteOrderResponse struct {
	OrderID uuid.UUID     `json:"order_id"`
	Cascade CascadeResult `json:"cascade"`
}

// ToAssignmentResponses converts domain assignments
func ToAssignmentResponses(assignments []trade.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = AssignmentResponse{
			ID:       a.ID,
			UserID:   a.UserID,
			UserName: a.UserName,
			Role:     string(a.Role),
			Payment:  a.Payment,
		}
	}
	return responses
}

// ToOrderResponse converts an order to its response representation
func ToOrderResponse(order *trade.Order) OrderResponse {
	return OrderResponse{
		ID:               order.ID,
		ShopID:           order.ShopID,
		Name:             order.Name,
		Description:      order.Description,
		ClientID:         order.ClientID,
		ClientName:       order.DisplayClientName(),
		TotalAmount:      order.TotalAmount,
		ReceivedPayment:  order.ReceivedPayment,
		RemainingPayment: order.RemainingPayment(),
		Status:           order.Status.String(),
		OrderDate:        order.OrderDate,
		CompletionDate:   order.CompletionDate,
		Workers:          ToAssignmentResponses(order.Workers),
		Transporters:     ToAssignmentResponses(order.Transporters),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of orders
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// =============================================================================
// Editing project DTOs
// =============================================================================

// CreateProjectRequest represents a request to create an editing project
type CreateProjectRequest struct {
	Name                 string          `json:"name" binding:"required,min=1,max=200"`
	Description          string          `json:"description"`
	ClientID             *uuid.UUID      `json:"client_id"`
	EditorID             uuid.UUID       `json:"editor_id" binding:"required"`
	TotalAmount          decimal.Decimal `json:"total_amount" binding:"required"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	StartDate            *time.Time      `json:"start_date"`
}

// UpdateProjectRequest represents a request to update an editing project
type UpdateProjectRequest struct {
	Name                 *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description          *string          `json:"description"`
	TotalAmount          *decimal.Decimal `json:"total_amount"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
}

// ProjectListFilter represents filter options for listing projects
type ProjectListFilter struct {
	Page     int
	PageSize int
	Status   string
	ClientID *uuid.UUID
	EditorID *uuid.UUID
}

// ProjectResponse represents an editing project in API responses
type ProjectResponse struct {
	ID                   uuid.UUID       `json:"id"`
	ShopID               uuid.UUID       `json:"shop_id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	ClientID             *uuid.UUID      `json:"client_id,omitempty"`
	ClientName           string          `json:"client_name"`
	EditorID             uuid.UUID       `json:"editor_id"`
	EditorName           string          `json:"editor_name"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	ReceivedPayment      decimal.Decimal `json:"received_payment"`
	RemainingPayment     decimal.Decimal `json:"remaining_payment"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	CommissionAmount     decimal.Decimal `json:"commission_amount"`
	Status               string          `json:"status"`
	StartDate            time.Time       `json:"start_date"`
	EndDate              *time.Time      `json:"end_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToProjectResponse converts a project to its response representation
func ToProjectResponse(project *trade.EditingProject) ProjectResponse {
	return ProjectResponse{
		ID:                   project.ID,
		ShopID:               project.ShopID,
		Name:                 project.Name,
		Description:          project.Description,
		ClientID:             project.ClientID,
		ClientName:           project.DisplayClientName(),
		EditorID:             project.EditorID,
		EditorName:           project.EditorName,
		TotalAmount:          project.TotalAmount,
		ReceivedPayment:      project.ReceivedPayment,
		RemainingPayment:     project.RemainingPayment(),
		CommissionPercentage: project.CommissionPercentage,
		CommissionAmount:     project.CommissionAmount,
		Status:               project.Status.String(),
		StartDate:            project.StartDate,
		EndDate:              project.EndDate,
		CreatedAt:            project.CreatedAt,
		UpdatedAt:            project.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of projects
func ToProjectResponses(projects []trade.EditingProject) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
