package report

import (
	"github.com/shopspring/decimal"
	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/report"
)

// MerchantRevenueResponse is a merchant's total revenue
type MerchantRevenueResponse struct {
	MerchantID int64           `json:"merchant_id"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ItemRevenueResponse is an item together with its total revenue
type ItemRevenueResponse struct {
	appcatalog.ItemResponse
	Revenue decimal.Decimal `json:"revenue"`
}

// RangeRevenueResponse is the revenue of every invoice created between two dates, inclusive
type RangeRevenueResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ToMerchantRevenueResponse converts the read model to a response
func ToMerchantRevenueResponse(r *report.MerchantRevenue) MerchantRevenueResponse {
	return MerchantRevenueResponse{MerchantID: r.MerchantID, Revenue: r.Revenue}
}

// ToItemRevenueResponses converts a ranking to responses, keeping its order
func ToItemRevenueResponses(ranking []report.ItemRevenue) []ItemRevenueResponse {
	responses := make([]ItemRevenueResponse, len(ranking))
	for i := range ranking {
		responses[i] = ItemRevenueResponse{
			ItemResponse: appcatalog.ToItemResponse(&ranking[i].Item),
			Revenue:      ranking[i].Revenue,
		}
	}
	return responses
}
