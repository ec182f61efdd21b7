package shared

import "context"

// EventPublisher hands events to whoever is listening
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventHandler reacts to published events. EventTypes lists the types it
// wants; nil subscribes it to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventBus is a publisher that handlers can subscribe to. Explicit eventTypes
// passed to Subscribe override the handler's own EventTypes.
type EventBus interface {
	EventPublisher
	Subscribe(handler EventHandler, eventTypes ...string)
}
