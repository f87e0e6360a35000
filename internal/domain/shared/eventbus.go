package shared

import "context"

// EventHandler processes the domain events it registers for. Handlers
// must tolerate redelivery; the bus offers no ordering guarantee across
// event types.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes names the event types this handler wants
	EventTypes() []string
}

// EventPublisher is the side services hold; publishing never fails the
// caller on handler errors.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus is the full dispatch surface wired at startup.
type EventBus interface {
	EventPublisher
	// Subscribe registers a handler; with no explicit types the
	// handler's own EventTypes are used
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
