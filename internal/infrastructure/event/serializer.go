package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ContentType is the MIME type of a serialized Envelope
const ContentType = "application/json"

// Envelope is the wire format for events leaving the process
type Envelope struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   int64           `json:"aggregate_id"`
	Payload       json.RawMessage `json:"payload"`
}

// Marshal wraps event and its JSON body in an Envelope
func Marshal(event shared.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.EventType(), err)
	}
	return json.Marshal(Envelope{
		ID:            event.EventID(),
		Type:          event.EventType(),
		OccurredAt:    event.OccurredAt(),
		AggregateType: event.AggregateType(),
		AggregateID:   event.AggregateID(),
		Payload:       payload,
	})
}

// Unmarshal decodes an Envelope; the payload is left for the consumer
func Unmarshal(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}
	return env, nil
}
