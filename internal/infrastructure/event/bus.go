package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PublishObserver is told the outcome of every event dispatch
type PublishObserver interface {
	ObserveEvent(eventType string, err error)
}

// subscription pairs a handler with the event types it asked for; an empty
// set means every type
type subscription struct {
	handler shared.EventHandler
	types   map[string]struct{}
}

func (s subscription) wants(eventType string) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[eventType]
	return ok
}

// InMemoryEventBus dispatches events synchronously, in subscription order
type InMemoryEventBus struct {
	mu       sync.RWMutex
	subs     []subscription
	logger   *zap.Logger
	observer PublishObserver
}

func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{logger: logger}
}

// WithObserver attaches an observer such as the Prometheus metrics
func (b *InMemoryEventBus) WithObserver(observer PublishObserver) *InMemoryEventBus {
	b.observer = observer
	return b
}

// Publish hands each event to every matching handler.
// All handlers run even when some fail; their errors are joined.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	var errs []error
	for _, event := range events {
		var eventErr error
		for _, handler := range b.handlersFor(event.EventType()) {
			if err := b.dispatch(ctx, handler, event); err != nil {
				b.logger.Error("handler failed to process event",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID().String()),
					zap.Error(err),
				)
				eventErr = errors.Join(eventErr, err)
			}
		}
		if b.observer != nil {
			b.observer.ObserveEvent(event.EventType(), eventErr)
		}
		if eventErr != nil {
			errs = append(errs, eventErr)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers handler for eventTypes, or for its own EventTypes when none are given
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	sub := subscription{handler: handler, types: make(map[string]struct{}, len(eventTypes))}
	for _, t := range eventTypes {
		sub.types[t] = struct{}{}
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

func (b *InMemoryEventBus) handlersFor(eventType string) []shared.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []shared.EventHandler
	for _, sub := range b.subs {
		if sub.wants(eventType) {
			out = append(out, sub.handler)
		}
	}
	return out
}

func (b *InMemoryEventBus) dispatch(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
