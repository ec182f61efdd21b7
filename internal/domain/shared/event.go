package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened to an aggregate. The metadata
// methods feed the outbound envelope; the concrete type is the payload.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() int64
	AggregateType() string
}

// BaseDomainEvent implements the metadata half of DomainEvent. Its fields are
// unexported so they stay out of the JSON payload.
type BaseDomainEvent struct {
	id            uuid.UUID
	eventType     string
	occurredAt    time.Time
	aggregateID   int64
	aggregateType string
}

func NewBaseDomainEvent(eventType, aggregateType string, aggregateID int64) BaseDomainEvent {
	return BaseDomainEvent{
		id:            uuid.New(),
		eventType:     eventType,
		occurredAt:    time.Now().UTC(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
	}
}

func (e BaseDomainEvent) EventID() uuid.UUID    { return e.id }
func (e BaseDomainEvent) EventType() string     { return e.eventType }
func (e BaseDomainEvent) OccurredAt() time.Time { return e.occurredAt }
func (e BaseDomainEvent) AggregateID() int64    { return e.aggregateID }
func (e BaseDomainEvent) AggregateType() string { return e.aggregateType }
