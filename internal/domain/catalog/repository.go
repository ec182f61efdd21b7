package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// ItemRepository defines the interface for item persistence
type ItemRepository interface {
	// FindByID returns shared.ErrNotFound when the item does not exist
	FindByID(ctx context.Context, id int64) (*Item, error)
	// FindAll lists items in storage order
	FindAll(ctx context.Context, page shared.Page) ([]Item, error)
	// FindByMerchant lists a merchant's items in storage order
	FindByMerchant(ctx context.Context, merchantID int64) ([]Item, error)
	// FindByNameContaining returns items whose name contains query, case-insensitively, in storage order
	FindByNameContaining(ctx context.Context, query string) ([]Item, error)
	// FindByPriceRange returns items priced strictly above minPrice and strictly below maxPrice.
	// A nil bound is not applied.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]Item, error)
	// HasLineEntries reports whether any invoice line entry references the item
	HasLineEntries(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	// Delete returns shared.ErrNotFound when nothing was deleted
	Delete(ctx context.Context, id int64) error
}

// MerchantRepository defines the interface for merchant persistence
type MerchantRepository interface {
	// FindByID returns shared.ErrNotFound when the merchant does not exist
	FindByID(ctx context.Context, id int64) (*Merchant, error)
	// FindAll lists merchants in storage order
	FindAll(ctx context.Context, page shared.Page) ([]Merchant, error)
	// FindByNameContaining returns merchants whose name contains query, case-insensitively, in storage order
	FindByNameContaining(ctx context.Context, query string) ([]Merchant, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, merchant *Merchant) error
}
