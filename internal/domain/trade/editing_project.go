package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopworks/backend/internal/domain/shared"
)

// EditingProject represents commissioned editing work for a client, handled
// by exactly one editor. The editor's commission and the remaining payment
// are derived values: recalculate runs inside every mutating method, so
// they are consistent with the stored amounts before every save.
type EditingProject struct {
	shared.ShopAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	ClientID   *uuid.UUID `gorm:"type:uuid;index"`
	ClientName string     `gorm:"type:varchar(200)"`

	EditorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EditorName string    `gorm:"type:varchar(100)"`

	TotalAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReceivedPayment      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CommissionPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CommissionAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Status    Status    `gorm:"type:varchar(20);not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time
}

// TableName returns the table name for GORM
func (EditingProject) TableName() string {
	return "editing_projects"
}

// NewEditingProject creates a new editing project in pending status
func NewEditingProject(shopID, editorID uuid.UUID, editorName, name string, totalAmount, commissionPercentage decimal.Decimal, startDate time.Time) (*EditingProject, error) {
	if err := validateProjectName(name); err != nil {
		return nil, err
	}
	if editorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EDITOR", "Editor ID cannot be empty")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Project total cannot be negative")
	}
	if err := validateCommissionPercentage(commissionPercentage); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	project := &EditingProject{
		ShopAggregateRoot:    shared.NewShopAggregateRoot(shopID),
		Name:                 name,
		EditorID:             editorID,
		EditorName:           editorName,
		TotalAmount:          totalAmount,
		ReceivedPayment:      decimal.Zero,
		CommissionPercentage: commissionPercentage,
		Status:               StatusPending,
		StartDate:            startDate,
	}
	project.recalculate()

	project.AddDomainEvent(NewProjectCreatedEvent(project))

	return project, nil
}

// LinkClient attaches the project to a client
func (p *EditingProject) LinkClient(clientID uuid.UUID, clientName string) error {
	if clientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}

	p.ClientID = &clientID
	p.ClientName = clientName
	p.touch()

	return nil
}

// DisplayClientName returns the client name, or the walk-in fallback.
func (p *EditingProject) DisplayClientName() string {
	if p.ClientName != "" {
		return p.ClientName
	}
	return DefaultClientName
}

// Update updates the project's details and amounts. Not allowed once completed.
func (p *EditingProject) Update(name, description string, totalAmount, commissionPercentage decimal.Decimal) error {
	if p.Status == StatusCompleted {
		return shared.ErrAlreadyCompleted
	}
	if err := validateProjectName(name); err != nil {
		return err
	}
	if totalAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Project total cannot be negative")
	}
	if err := validateCommissionPercentage(commissionPercentage); err != nil {
		return err
	}
	if p.ReceivedPayment.GreaterThan(totalAmount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Project total cannot drop below the received payment")
	}

	p.Name = name
	p.Description = description
	p.TotalAmount = totalAmount
	p.CommissionPercentage = commissionPercentage
	p.touch()

	p.AddDomainEvent(NewProjectUpdatedEvent(p))

	return nil
}

// RecordPayment sets the received payment to the new value
func (p *EditingProject) RecordPayment(received decimal.Decimal) error {
	if received.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Received payment cannot be negative")
	}
	if received.GreaterThan(p.TotalAmount) {
		return shared.NewDomainError("INVALID_AMOUNT", "Received payment cannot exceed the project total")
	}

	p.ReceivedPayment = received
	p.touch()

	p.AddDomainEvent(NewProjectUpdatedEvent(p))

	return nil
}

// RemainingPayment returns the unpaid portion of the project total
func (p *EditingProject) RemainingPayment() decimal.Decimal {
	return p.TotalAmount.Sub(p.ReceivedPayment)
}

// Start moves the project from pending to in_progress
func (p *EditingProject) Start() error {
	if !p.Status.CanTransitionTo(StatusInProgress) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition project from "+p.Status.String()+" to "+StatusInProgress.String())
	}

	p.Status = StatusInProgress
	p.touch()

	return nil
}

// Complete marks the project as completed and stamps the end date
func (p *EditingProject) Complete() error {
	if p.Status == StatusCompleted {
		return shared.ErrAlreadyCompleted
	}
	if !p.Status.CanTransitionTo(StatusCompleted) {
		return shared.ErrInvalidState
	}

	now := time.Now()
	p.Status = StatusCompleted
	p.EndDate = &now
	p.touch()

	p.AddDomainEvent(NewProjectCompletedEvent(p))

	return nil
}

// IsCompleted reports whether the project reached its terminal state
func (p *EditingProject) IsCompleted() bool {
	return p.Status == StatusCompleted
}

// touch recalculates the derived amounts and bumps the version. Every
// mutating method goes through here so a stale CommissionAmount can never
// reach the store.
func (p *EditingProject) touch() {
	p.recalculate()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func (p *EditingProject) recalculate() {
	p.CommissionAmount = p.TotalAmount.
		Mul(p.CommissionPercentage).
		Div(decimal.NewFromInt(100)).
		Round(0)
}

func validateProjectName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}
	return nil
}

func validateCommissionPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percentage must be between 0 and 100")
	}
	return nil
}
