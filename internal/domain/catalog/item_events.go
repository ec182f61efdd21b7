package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeItem = "item"

// Event type constants
const (
	EventTypeItemCreated = "item.created"
	EventTypeItemUpdated = "item.updated"
	EventTypeItemDeleted = "item.deleted"
)

// ItemEvent carries an item snapshot for every item lifecycle event
type ItemEvent struct {
	shared.BaseDomainEvent
	ItemID      int64           `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MerchantID  int64           `json:"merchant_id"`
}

func newItemEvent(eventType string, item *Item) *ItemEvent {
	return &ItemEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
		Description:     item.Description,
		UnitPrice:       item.UnitPrice,
		MerchantID:      item.MerchantID,
	}
}

// NewItemCreatedEvent creates an item.created event
func NewItemCreatedEvent(item *Item) *ItemEvent {
	return newItemEvent(EventTypeItemCreated, item)
}

// NewItemUpdatedEvent creates an item.updated event
func NewItemUpdatedEvent(item *Item) *ItemEvent {
	return newItemEvent(EventTypeItemUpdated, item)
}

// NewItemDeletedEvent creates an item.deleted event
func NewItemDeletedEvent(item *Item) *ItemEvent {
	return newItemEvent(EventTypeItemDeleted, item)
}
