package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/partner"
	"github.com/shopworks/backend/internal/domain/trade"
)

// CreateClientRequest represents a request to register a new client
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address" binding:"max=500"`
	Notes       string `json:"notes"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Notes       *string `json:"notes"`
}

// RecordClientPaymentRequest represents a payment received from a client
type RecordClientPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   *time.Time      `json:"date"`
	Notes  string          `json:"notes"`
}

// UpdateWorkPaymentRequest updates the received payment on one work item
type UpdateWorkPaymentRequest struct {
	Kind            string          `json:"kind" binding:"required,oneof=order project"`
	ReceivedPayment decimal.Decimal `json:"received_payment" binding:"required"`
}

// ClientListFilter represents filter options for listing clients
type ClientListFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   string
}

// PaymentRecordResponse represents one payment history entry
type PaymentRecordResponse struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID               uuid.UUID               `json:"id"`
	ShopID           uuid.UUID               `json:"shop_id"`
	Name             string                  `json:"name"`
	ContactName      string                  `json:"contact_name,omitempty"`
	Phone            string                  `json:"phone,omitempty"`
	Email            string                  `json:"email,omitempty"`
	Address          string                  `json:"address,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	TotalPaymentsDue decimal.Decimal         `json:"total_payments_due"`
	ReceivedPayments decimal.Decimal         `json:"received_payments"`
	PendingPayments  decimal.Decimal         `json:"pending_payments"`
	PaymentStatus    string                  `json:"payment_status"`
	LifetimeOrders   int                     `json:"lifetime_orders"`
	PaymentHistory   []PaymentRecordResponse `json:"payment_history,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// WorkHistoryResponse is a client's combined order and project history
type WorkHistoryResponse struct {
	ClientID uuid.UUID        `json:"client_id"`
	Items    []trade.WorkItem `json:"items"`
}

// ToPaymentRecordResponses converts payment history entries
func ToPaymentRecordResponses(records []partner.PaymentRecord) []PaymentRecordResponse {
	responses := make([]PaymentRecordResponse, len(records))
	for i, r := range records {
		responses[i] = PaymentRecordResponse{
			ID:     r.ID,
			Date:   r.Date,
			Amount: r.Amount,
			Notes:  r.Notes,
		}
	}
	return responses
}

// ToClientResponse converts a client to its response representation
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:               client.ID,
		ShopID:           client.ShopID,
		Name:             client.Name,
		ContactName:      client.ContactName,
		Phone:            client.Phone,
		Email:            client.Email,
		Address:          client.Address,
		Notes:            client.Notes,
		TotalPaymentsDue: client.TotalPaymentsDue,
		ReceivedPayments: client.ReceivedPayments,
		PendingPayments:  client.PendingPayments(),
		PaymentStatus:    string(client.PaymentStatus()),
		LifetimeOrders:   client.LifetimeOrders,
		PaymentHistory:   ToPaymentRecordResponses(client.PaymentHistory),
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}
}

// ToClientResponses converts a slice of clients
func ToClientResponses(clients []partner.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
