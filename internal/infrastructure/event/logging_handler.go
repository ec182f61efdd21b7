package event

import (
	"context"

	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingHandler writes every event it receives to the log.
// It is the only handler when no broker is configured.
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a LoggingHandler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.Named("events")}
}

// Handle implements shared.EventHandler
func (h *LoggingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.Int64("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes implements shared.EventHandler; empty means every event
func (h *LoggingHandler) EventTypes() []string {
	return nil
}
