package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is what the event-publishing path needs from any
// aggregate: version bookkeeping and the pending-event buffer.
type AggregateRoot interface {
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot carries the version counter for optimistic locking
// and the events recorded since the last publish.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion bumps the version; every mutator calls it
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent records an event for publication after save
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the pending events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops the pending events after publication
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates an aggregate base at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// ShopAggregateRoot scopes an aggregate to its shop. The shop is the
// tenant boundary: every query against a shop-owned aggregate filters
// by ShopID.
type ShopAggregateRoot struct {
	BaseAggregateRoot
	ShopID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewShopAggregateRoot creates a new shop-scoped aggregate root
func NewShopAggregateRoot(shopID uuid.UUID) ShopAggregateRoot {
	return ShopAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		ShopID:            shopID,
	}
}
