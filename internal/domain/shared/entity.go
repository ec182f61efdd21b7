package shared

import "time"

// BaseEntity carries the identity and timestamps every stored record has.
// A zero ID means the entity has not been inserted yet.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity stamps both timestamps with the current UTC time
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{CreatedAt: now, UpdatedAt: now}
}

// Persisted reports whether the store has assigned an ID
func (e *BaseEntity) Persisted() bool { return e.ID != 0 }

// Touch bumps UpdatedAt
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// BaseAggregateRoot buffers events raised by an aggregate until the
// application layer publishes them after commit.
type BaseAggregateRoot struct {
	BaseEntity
	pending []DomainEvent
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity()}
}

func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.pending = append(a.pending, event)
}

// GetDomainEvents returns the buffered events in the order they were raised
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.pending
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.pending = nil
}
