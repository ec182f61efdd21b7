package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemSearch is a validated item search request: either a NameFilter or a PriceFilter.
type ItemSearch interface {
	isItemSearch()
}

// NameFilter matches items whose name contains Query, case-insensitively.
type NameFilter struct {
	Query string
}

// PriceFilter matches items priced strictly between the given bounds.
// At least one bound is set.
type PriceFilter struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

func (NameFilter) isItemSearch()  {}
func (PriceFilter) isItemSearch() {}

// ParseItemSearch builds an ItemSearch from raw request values.
// Exactly one of name or a price bound must be present; blank values count as absent.
func ParseItemSearch(name, minPrice, maxPrice *string) (ItemSearch, error) {
	hasName := present(name)
	hasPrice := present(minPrice) || present(maxPrice)

	switch {
	case hasName && hasPrice:
		return nil, shared.NewBadRequestError("search by either name or price, not both")
	case !hasName && !hasPrice:
		return nil, shared.NewBadRequestError("a name or min_price/max_price parameter is required")
	case hasName:
		return NameFilter{Query: strings.TrimSpace(*name)}, nil
	}

	lo, err := parsePrice("min_price", minPrice)
	if err != nil {
		return nil, err
	}
	hi, err := parsePrice("max_price", maxPrice)
	if err != nil {
		return nil, err
	}
	return PriceFilter{Min: lo, Max: hi}, nil
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func parsePrice(field string, raw *string) (*decimal.Decimal, error) {
	if !present(raw) {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, shared.NewBadRequestError(field + " must be a number")
	}
	if d.IsNegative() {
		return nil, shared.NewBadRequestError(field + " must not be negative")
	}
	return &d, nil
}

// FoldName normalises a name for case-insensitive comparison.
func FoldName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// SortItemsByNameDesc orders items by lowercased name, descending.
// Items with equal keys keep their relative order.
func SortItemsByNameDesc(items []Item) {
	type keyed struct {
		key  string
		item Item
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{key: FoldName(it.Name), item: it}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].key > ks[j].key
	})
	for i := range ks {
		items[i] = ks[i].item
	}
}

// FirstMerchantByName returns the merchant whose lowercased name sorts first,
// or nil when merchants is empty. Ties go to the earliest merchant in the slice.
func FirstMerchantByName(merchants []Merchant) *Merchant {
	var best *Merchant
	var bestKey string
	for i := range merchants {
		key := FoldName(merchants[i].Name)
		if best == nil || key < bestKey {
			best = &merchants[i]
			bestKey = key
		}
	}
	return best
}
