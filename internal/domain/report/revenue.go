package report

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// DateLayout is the calendar date format accepted for revenue ranges
const DateLayout = "2006-01-02"

// MaxTopItems bounds the item revenue ranking size
const MaxTopItems = 1000

// MerchantRevenue is a read model for a merchant's total revenue
type MerchantRevenue struct {
	MerchantID int64           `json:"merchant_id"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// ItemRevenue is a read model pairing an item with its total revenue
type ItemRevenue struct {
	Item    catalog.Item    `json:"item"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DateRange is an inclusive range of calendar dates in UTC
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses two YYYY-MM-DD dates into an inclusive range
func NewDateRange(start, end string) (DateRange, error) {
	s, err := parseDate("start_date", start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := parseDate("end_date", end)
	if err != nil {
		return DateRange{}, err
	}
	if e.Before(s) {
		return DateRange{}, shared.NewBadRequestError("end_date must not be before start_date")
	}
	return DateRange{Start: s, End: e}, nil
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, shared.NewBadRequestError(field + " is required")
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, shared.NewBadRequestError(field + " must be a date formatted as YYYY-MM-DD")
	}
	return t, nil
}

// Bounds returns the half-open instant interval [from, until) covering every
// moment of both end dates: from is Start at 00:00, until is End+1 day at 00:00.
func (r DateRange) Bounds() (from, until time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1)
}

// ValidateTopCount checks the requested size of an item revenue ranking
func ValidateTopCount(count int) error {
	if count < 1 {
		return shared.NewBadRequestError("count must be a positive integer")
	}
	if count > MaxTopItems {
		return shared.NewBadRequestError("count must not exceed 1000")
	}
	return nil
}

// RevenueRepository computes revenue from shipped invoices that have at least
// one successful transaction. Each qualifying line entry contributes
// quantity × unit_price exactly once.
type RevenueRepository interface {
	// MerchantRevenue returns shared.ErrNotFound when the merchant does not exist,
	// and zero when it has no qualifying invoices
	MerchantRevenue(ctx context.Context, merchantID int64) (*MerchantRevenue, error)

	// TopItemsByRevenue returns up to limit items ordered by revenue descending,
	// ties in storage order. Items without revenue rank last with zero.
	TopItemsByRevenue(ctx context.Context, limit int) ([]ItemRevenue, error)

	// RevenueBetween sums revenue over invoices created in [from, until)
	RevenueBetween(ctx context.Context, from, until time.Time) (decimal.Decimal, error)
}
