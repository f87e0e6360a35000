package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkItemKind tags the concrete type behind a work item projection
type WorkItemKind string

const (
	WorkItemKindOrder   WorkItemKind = "order"
	WorkItemKindProject WorkItemKind = "project"
)

// WorkItem is the shared projection of an Order or an EditingProject used
// by work-history and dashboard reads. Consumers switch on Kind instead of
// probing for fields that only one of the two types has.
type WorkItem struct {
	Kind             WorkItemKind    `json:"kind"`
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	ClientID         *uuid.UUID      `json:"client_id,omitempty"`
	ClientName       string          `json:"client_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	ReceivedPayment  decimal.Decimal `json:"received_payment"`
	RemainingPayment decimal.Decimal `json:"remaining_payment"`
	Status           Status          `json:"status"`
	Date             time.Time       `json:"date"`
}

// WorkItem projects the order into the shared work item shape
func (o *Order) WorkItem() WorkItem {
	return WorkItem{
		Kind:             WorkItemKindOrder,
		ID:               o.ID,
		Name:             o.Name,
		ClientID:         o.ClientID,
		ClientName:       o.DisplayClientName(),
		TotalAmount:      o.TotalAmount,
		ReceivedPayment:  o.ReceivedPayment,
		RemainingPayment: o.RemainingPayment(),
		Status:           o.Status,
		Date:             o.OrderDate,
	}
}

// WorkItem projects the editing project into the shared work item shape
func (p *EditingProject) WorkItem() WorkItem {
	return WorkItem{
		Kind:             WorkItemKindProject,
		ID:               p.ID,
		Name:             p.Name,
		ClientID:         p.ClientID,
		ClientName:       p.DisplayClientName(),
		TotalAmount:      p.TotalAmount,
		ReceivedPayment:  p.ReceivedPayment,
		RemainingPayment: p.RemainingPayment(),
		Status:           p.Status,
		Date:             p.StartDate,
	}
}
