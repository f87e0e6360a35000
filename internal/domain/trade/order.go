package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// Status represents the lifecycle state of an order or editing project
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions only move forward; completed is terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCompleted
	case StatusInProgress:
		return target == StatusCompleted
	case StatusCompleted:
		return false
	}
	return false
}

// AssignmentRole distinguishes the two assignment lists on an order
type AssignmentRole string

const (
	AssignmentRoleWorker      AssignmentRole = "worker"
	AssignmentRoleTransporter AssignmentRole = "transporter"
)

// Assignment links one employee to an order together with the payment the
// employee earns for the work. A zero payment is allowed and produces no
// ledger entry.
type Assignment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Role      AssignmentRole
	Payment   decimal.Decimal
	CreatedAt time.Time
}

// NewAssignment creates a new assignment for an order
func NewAssignment(orderID, userID uuid.UUID, userName string, role AssignmentRole, payment decimal.Decimal) (*Assignment, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Assignee ID cannot be empty")
	}
	if payment.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Assignment payment cannot be negative")
	}
	switch role {
	case AssignmentRoleWorker, AssignmentRoleTransporter:
	default:
		return nil, shared.NewDomainError("INVALID_ROLE", "Assignment role must be worker or transporter")
	}

	return &Assignment{
		ID:        uuid.New(),
		OrderID:   orderID,
		UserID:    userID,
		UserName:  userName,
		Role:      role,
		Payment:   payment,
		CreatedAt: time.Now(),
	}, nil
}

// IsPaid reports whether the assignment carries a positive payment and
// therefore produces a salary ledger entry.
func (a *Assignment) IsPaid() bool {
	return a.Payment.GreaterThan(decimal.Zero)
}

// Order represents a shop's work order for a client. It is the aggregate
// root whose create, complete and delete operations fan out to the salary
// ledger and the client's balance counters.
type Order struct {
	shared.ShopAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	// ClientID may be nil for walk-in work; ClientName is the display
	// fallback, resolved once when the order is loaded or created.
	ClientID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientName string     `gorm:"type:varchar(200)"`

	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayment decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          Status          `gorm:"type:varchar(20);not null;index"`

	OrderDate      time.Time `gorm:"not null;index"`
	CompletionDate *time.Time

	Workers      []Assignment `gorm:"-"`
	Transporters []Assignment `gorm:"-"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// DefaultClientName is the display fallback for orders without a client link.
const DefaultClientName = "Walk-in client"

// NewOrder creates a new order in pending status
func NewOrder(shopID uuid.UUID, name string, totalAmount decimal.Decimal, orderDate time.Time) (*Order, error) {
	if err := validateOrderName(name); err != nil {
		return nil, err
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order total cannot be negative")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &Order{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              name,
		TotalAmount:       totalAmount,
		ReceivedPayment:   decimal.Zero,
		Status:            StatusPending,
		OrderDate:         orderDate,
		Workers:           make([]Assignment, 0),
		Transporters:      make([]Assignment, 0),
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// LinkClient attaches the order to a client. The resolved client name is
// stored so consumers never re-resolve it.
func (o *Order) LinkClient(clientID uuid.UUID, clientName string) error {
	if clientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}

	o.ClientID = &clientID
	o.ClientName = clientName
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// DisplayClientName returns the client name, or the walk-in fallback when
// the order has neither a client link nor a stored name.
func (o *Order) DisplayClientName() string {
	if o.ClientName != "" {
		return o.ClientName
	}
	return DefaultClientName
}

// Update updates the order's basic details. Not allowed once completed.
func (o *Order) Update(name, description string) error {
	if o.Status == StatusCompleted {
		return shared.ErrAlreadyCompleted
	}
	if err := validateOrderName(name); err != nil {
		return err
	}

	o.Name = name
	o.Description = description
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// AssignWorker adds a worker assignment. Only allowed before completion.
func (o *Order) AssignWorker(userID uuid.UUID, userName string, payment decimal.Decimal) (*Assignment, error) {
	return o.assign(userID, userName, AssignmentRoleWorker, payment)
}

// AssignTransporter adds a transporter assignment. Only allowed before completion.
func (o *Order) AssignTransporter(userID uuid.UUID, userName string, payment decimal.Decimal) (*Assignment, error) {
	return o.assign(userID, userName, AssignmentRoleTransporter, payment)
}

func (o *Order) assign(userID uuid.UUID, userName string, role AssignmentRole, payment decimal.Decimal) (*Assignment, error) {
	if o.Status == StatusCompleted {
		return nil, shared.ErrAlreadyCompleted
	}

	for _, a := range o.Assignments() {
		if a.UserID == userID && a.Role == role {
			return nil, shared.NewDomainError("DUPLICATE_ASSIGNMENT", "User is already assigned to this order")
		}
	}

	assignment, err := NewAssignment(o.ID, userID, userName, role, payment)
	if err != nil {
		return nil, err
	}

	switch role {
	case AssignmentRoleWorker:
		o.Workers = append(o.Workers, *assignment)
	case AssignmentRoleTransporter:
		o.Transporters = append(o.Transporters, *assignment)
	}

	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return assignment, nil
}

// Assignments returns both assignment lists, workers first.
func (o *Order) Assignments() []Assignment {
	all := make([]Assignment, 0, len(o.Workers)+len(o.Transporters))
	all = append(all, o.Workers...)
	all = append(all, o.Transporters...)
	return all
}

// PaidAssignments returns the assignments with a positive payment, the ones
// that produce salary ledger entries.
func (o *Order) PaidAssignments() []Assignment {
	paid := make([]Assignment, 0)
	for _, a := range o.Assignments() {
		if a.IsPaid() {
			paid = append(paid, a)
		}
	}
	return paid
}

// RemainingPayment returns the unpaid portion of the order total. It is
// recomputed from the two stored amounts on every read.
func (o *Order) RemainingPayment() decimal.Decimal {
	return o.TotalAmount.Sub(o.ReceivedPayment)
}

// RecordPayment sets the received payment to the new value. The remaining
// payment is derived, never written.
func (o *Order) RecordPayment(received decimal.Decimal) error {
	if received.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Received payment cannot be negative")
	}
	if received.GreaterThan(o.TotalAmount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Received payment cannot exceed the order total")
	}

	o.ReceivedPayment = received
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderPaymentRecordedEvent(o))

	return nil
}

// Start moves the order from pending to in_progress
func (o *Order) Start() error {
	return o.transitionTo(StatusInProgress)
}

// Complete marks the order as completed and stamps the completion date.
// Completing an already-completed order is rejected; the guard here is what
// prevents the payout cascade from running twice.
func (o *Order) Complete() error {
	if o.Status == StatusCompleted {
		return shared.ErrAlreadyCompleted
	}
	if err := o.transitionTo(StatusCompleted); err != nil {
		return err
	}

	now := time.Now()
	o.CompletionDate = &now

	o.AddDomainEvent(NewOrderCompletedEvent(o))

	return nil
}

func (o *Order) transitionTo(target Status) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// IsCompleted reports whether the order reached its terminal state
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

func validateOrderName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Order name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Order name cannot exceed 200 characters")
	}
	return nil
}
