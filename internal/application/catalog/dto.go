package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateItemInput carries the fields of a new item.
// UnitPrice is nil when the caller did not send one.
type CreateItemInput struct {
	Name        string
	Description string
	UnitPrice   *decimal.Decimal
	MerchantID  int64
}

// UpdateItemInput carries a partial item update; nil fields are left unchanged
type UpdateItemInput struct {
	Name        *string
	Description *string
	UnitPrice   *decimal.Decimal
	MerchantID  *int64
}

func (in CreateItemInput) attributes() catalog.ItemAttributes {
	return catalog.ItemAttributes{
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		MerchantID:  in.MerchantID,
	}
}

func (in UpdateItemInput) patch() catalog.ItemPatch {
	return catalog.ItemPatch{
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		MerchantID:  in.MerchantID,
	}
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MerchantID  int64           `json:"merchant_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MerchantResponse represents a merchant in API responses
type MerchantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToItemResponse converts a domain Item to ItemResponse
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		MerchantID:  item.MerchantID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain Items to ItemResponses
func ToItemResponses(items []catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}

// ToMerchantResponse converts a domain Merchant to MerchantResponse
func ToMerchantResponse(m *catalog.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToMerchantResponses converts a slice of domain Merchants to MerchantResponses
func ToMerchantResponses(merchants []catalog.Merchant) []MerchantResponse {
	responses := make([]MerchantResponse, len(merchants))
	for i := range merchants {
		responses[i] = ToMerchantResponse(&merchants[i])
	}
	return responses
}
