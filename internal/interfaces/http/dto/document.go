package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
	appcatalog "github.com/storefront/backend/internal/application/catalog"
	appreport "github.com/storefront/backend/internal/application/report"
)

// Resource types
const (
	TypeItem            = "item"
	TypeMerchant        = "merchant"
	TypeMerchantRevenue = "merchant_revenue"
	TypeItemRevenue     = "item_revenue"
	TypeRevenue         = "revenue"
)

// Money renders a decimal as a JSON number with two fraction digits
type Money decimal.Decimal

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// Document is the top-level response envelope
type Document struct {
	Data any `json:"data"`
}

// Resource is one typed entry of a document
type Resource struct {
	ID         *string `json:"id"`
	Type       string  `json:"type"`
	Attributes any     `json:"attributes"`
}

// ItemAttributes are the public fields of an item
type ItemAttributes struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   Money  `json:"unit_price"`
	MerchantID  int64  `json:"merchant_id"`
}

// MerchantAttributes are the public fields of a merchant
type MerchantAttributes struct {
	Name string `json:"name"`
}

// RevenueAttributes carry a revenue total
type RevenueAttributes struct {
	Revenue Money `json:"revenue"`
}

// ItemRevenueAttributes are an item's fields plus its revenue
type ItemRevenueAttributes struct {
	ItemAttributes
	Revenue Money `json:"revenue"`
}

// Single wraps one resource
func Single(r Resource) Document {
	return Document{Data: r}
}

// List wraps resources; a nil slice still renders as []
func List(rs []Resource) Document {
	if rs == nil {
		rs = []Resource{}
	}
	return Document{Data: rs}
}

// Empty is the document for a lookup that matched nothing
func Empty() Document {
	return Document{Data: struct{}{}}
}

func newResource(id int64, typ string, attrs any) Resource {
	s := strconv.FormatInt(id, 10)
	return Resource{ID: &s, Type: typ, Attributes: attrs}
}

func itemAttributes(item appcatalog.ItemResponse) ItemAttributes {
	return ItemAttributes{
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   Money(item.UnitPrice),
		MerchantID:  item.MerchantID,
	}
}

// ItemResource renders an item
func ItemResource(item appcatalog.ItemResponse) Resource {
	return newResource(item.ID, TypeItem, itemAttributes(item))
}

// ItemResources renders items in order
func ItemResources(items []appcatalog.ItemResponse) []Resource {
	rs := make([]Resource, len(items))
	for i, item := range items {
		rs[i] = ItemResource(item)
	}
	return rs
}

// MerchantResource renders a merchant
func MerchantResource(m appcatalog.MerchantResponse) Resource {
	return newResource(m.ID, TypeMerchant, MerchantAttributes{Name: m.Name})
}

// MerchantResources renders merchants in order
func MerchantResources(merchants []appcatalog.MerchantResponse) []Resource {
	rs := make([]Resource, len(merchants))
	for i, m := range merchants {
		rs[i] = MerchantResource(m)
	}
	return rs
}

// MerchantRevenueResource renders a merchant's revenue under the merchant's id
func MerchantRevenueResource(r appreport.MerchantRevenueResponse) Resource {
	return newResource(r.MerchantID, TypeMerchantRevenue, RevenueAttributes{Revenue: Money(r.Revenue)})
}

// ItemRevenueResources renders a revenue ranking in order
func ItemRevenueResources(ranking []appreport.ItemRevenueResponse) []Resource {
	rs := make([]Resource, len(ranking))
	for i, r := range ranking {
		rs[i] = newResource(r.ID, TypeItemRevenue, ItemRevenueAttributes{
			ItemAttributes: itemAttributes(r.ItemResponse),
			Revenue:        Money(r.Revenue),
		})
	}
	return rs
}

// RangeRevenueResource renders a date-range total; it has no identity
func RangeRevenueResource(r appreport.RangeRevenueResponse) Resource {
	return Resource{Type: TypeRevenue, Attributes: RevenueAttributes{Revenue: Money(r.Revenue)}}
}
