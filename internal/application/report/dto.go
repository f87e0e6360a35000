package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/identity"
)

// AlertType classifies an alert's urgency
type AlertType string

const (
	AlertTypeUrgent AlertType = "urgent"
	AlertTypeInfo   AlertType = "info"
)

// Alert is one dashboard alert record
type Alert struct {
	Type    AlertType `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Icon    string    `json:"icon"`
	Count   int       `json:"count"`
}

// Viewer identifies the caller the dashboard is rendered for. Owners get
// the shop-wide view; employees get a view filtered to records referencing
// their own ID.
type Viewer struct {
	UserID uuid.UUID
	Role   identity.Role
}

// IsOwner reports whether the viewer sees the shop-wide dashboard
func (v Viewer) IsOwner() bool {
	return v.Role == identity.RoleOwner
}

// CacheKey distinguishes cached payloads per caller class. Owner views are
// shared; employee views are keyed by user.
func (v Viewer) CacheKey() string {
	if v.IsOwner() {
		return "owner"
	}
	return v.UserID.String()
}

// OrderStats holds order counters by status
type OrderStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	LastWeek   int64 `json:"last_week,omitempty"`
}

// ProjectStats holds editing project counters by status
type ProjectStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// SalaryStats summarises the unpaid slice of the salary ledger
type SalaryStats struct {
	UnpaidCount  int             `json:"unpaid_count"`
	UnpaidAmount decimal.Decimal `json:"unpaid_amount"`
}

// ReceivableStats summarises outstanding client balances
type ReceivableStats struct {
	Clients       int             `json:"clients"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

// StatsResponse is the dashboard stats payload. Owner responses carry the
// shop-wide counters including clients and receivables; employee responses
// carry only the counters scoped to their own assignments.
type StatsResponse struct {
	Scope       string           `json:"scope"`
	Clients     int64            `json:"clients,omitempty"`
	Employees   int64            `json:"employees,omitempty"`
	Orders      OrderStats       `json:"orders"`
	Projects    *ProjectStats    `json:"projects,omitempty"`
	Salaries    SalaryStats      `json:"salaries"`
	Receivables *ReceivableStats `json:"receivables,omitempty"`
}

// AlertsResponse is the dashboard alerts payload
type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}
