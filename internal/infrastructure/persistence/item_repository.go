package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	row, err := firstByID[models.ItemModel](ctx, r.db, "item", id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindAll lists one page of items in storage order
func (r *GormItemRepository) FindAll(ctx context.Context, page shared.Page) ([]catalog.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// FindByMerchant lists a merchant's items in storage order
func (r *GormItemRepository) FindByMerchant(ctx context.Context, merchantID int64) ([]catalog.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// FindByNameContaining returns items whose name contains query, case-insensitively
func (r *GormItemRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where(containsClause(r.db, "name"), containsPattern(query)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// FindByPriceRange returns items priced strictly inside the given bounds
func (r *GormItemRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice *decimal.Decimal) ([]catalog.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.ItemModel{})
	if minPrice != nil {
		query = query.Where("unit_price > ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("unit_price < ?", *maxPrice)
	}

	var rows []models.ItemModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return itemsToDomain(rows), nil
}

// HasLineEntries reports whether any invoice line entry references the item
func (r *GormItemRepository) HasLineEntries(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceItemModel{}).
		Where("item_id = ?", id).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new item and copies the generated ID back
func (r *GormItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	model := models.ItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// Update saves every field of an existing item
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	model := models.ItemModelFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"description": model.Description,
			"unit_price":  model.UnitPrice,
			"merchant_id": model.MerchantID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("item", item.ID)
	}
	return nil
}

// Delete removes an item by ID
func (r *GormItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("item", id)
	}
	return nil
}

func itemsToDomain(rows []models.ItemModel) []catalog.Item {
	items := make([]catalog.Item, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items
}

// Ensure GormItemRepository implements ItemRepository interface
var _ catalog.ItemRepository = (*GormItemRepository)(nil)
