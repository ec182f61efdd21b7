package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// PriceScale is the number of fraction digits a unit price may carry
const PriceScale = 2

// MaxUnitPrice is the exclusive upper bound of a unit price, matching the
// DECIMAL(12,2) column
var MaxUnitPrice = decimal.New(1, 10)

// Item is a product listed by exactly one merchant
type Item struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	MerchantID  int64
}

// ItemAttributes holds the mandatory fields of an item.
// UnitPrice is a pointer so that "absent" and "zero" stay distinguishable.
type ItemAttributes struct {
	Name        string
	Description string
	UnitPrice   *decimal.Decimal
	MerchantID  int64
}

// ItemPatch describes a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Name        *string
	Description *string
	UnitPrice   *decimal.Decimal
	MerchantID  *int64
}

// Violations checks the item invariants and reports every failing field.
// Merchant existence needs the store and is checked by the caller.
func (a ItemAttributes) Violations() shared.Violations {
	var v shared.Violations
	if strings.TrimSpace(a.Name) == "" {
		v.Add("name", "can't be blank")
	}
	if strings.TrimSpace(a.Description) == "" {
		v.Add("description", "can't be blank")
	}
	switch {
	case a.UnitPrice == nil:
		v.Add("unit_price", "can't be blank")
	case !a.UnitPrice.IsPositive():
		v.Add("unit_price", "must be greater than 0")
	case !a.UnitPrice.Equal(a.UnitPrice.Round(PriceScale)):
		v.Add("unit_price", "must have at most 2 decimal places")
	case a.UnitPrice.GreaterThanOrEqual(MaxUnitPrice):
		v.Add("unit_price", "must be less than 10000000000")
	}
	if a.MerchantID <= 0 {
		v.Add("merchant", "must exist")
	}
	return v
}

// NewItem creates a new item after checking its invariants
func NewItem(attrs ItemAttributes) (*Item, error) {
	if err := attrs.Violations().Err(); err != nil {
		return nil, err
	}
	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(attrs.Name),
		Description:       strings.TrimSpace(attrs.Description),
		UnitPrice:         *attrs.UnitPrice,
		MerchantID:        attrs.MerchantID,
	}, nil
}

// Attributes returns the current field values
func (i *Item) Attributes() ItemAttributes {
	price := i.UnitPrice
	return ItemAttributes{
		Name:        i.Name,
		Description: i.Description,
		UnitPrice:   &price,
		MerchantID:  i.MerchantID,
	}
}

// Patched returns the attributes that would result from applying p
func (i *Item) Patched(p ItemPatch) ItemAttributes {
	attrs := i.Attributes()
	if p.Name != nil {
		attrs.Name = *p.Name
	}
	if p.Description != nil {
		attrs.Description = *p.Description
	}
	if p.UnitPrice != nil {
		attrs.UnitPrice = p.UnitPrice
	}
	if p.MerchantID != nil {
		attrs.MerchantID = *p.MerchantID
	}
	return attrs
}

// Apply validates and applies a partial update.
// On failure the item is left unchanged.
func (i *Item) Apply(p ItemPatch) error {
	attrs := i.Patched(p)
	if err := attrs.Violations().Err(); err != nil {
		return err
	}
	i.Name = strings.TrimSpace(attrs.Name)
	i.Description = strings.TrimSpace(attrs.Description)
	i.UnitPrice = *attrs.UnitPrice
	i.MerchantID = attrs.MerchantID
	i.Touch()
	i.AddDomainEvent(NewItemUpdatedEvent(i))
	return nil
}

// RecordCreated queues the creation event once the store has assigned an ID
func (i *Item) RecordCreated() {
	i.AddDomainEvent(NewItemCreatedEvent(i))
}

// RecordDeleted queues the deletion event
func (i *Item) RecordDeleted() {
	i.AddDomainEvent(NewItemDeletedEvent(i))
}
