package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMerchantRepository implements MerchantRepository using GORM
type GormMerchantRepository struct {
	db *gorm.DB
}

// NewGormMerchantRepository creates a new GormMerchantRepository
func NewGormMerchantRepository(db *gorm.DB) *GormMerchantRepository {
	return &GormMerchantRepository{db: db}
}

// FindByID finds a merchant by its ID
func (r *GormMerchantRepository) FindByID(ctx context.Context, id int64) (*catalog.Merchant, error) {
	row, err := firstByID[models.MerchantModel](ctx, r.db, "merchant", id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindAll lists one page of merchants in storage order
func (r *GormMerchantRepository) FindAll(ctx context.Context, page shared.Page) ([]catalog.Merchant, error) {
	var rows []models.MerchantModel
	if err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return merchantsToDomain(rows), nil
}

// FindByNameContaining returns merchants whose name contains query, case-insensitively
func (r *GormMerchantRepository) FindByNameContaining(ctx context.Context, query string) ([]catalog.Merchant, error) {
	var rows []models.MerchantModel
	if err := r.db.WithContext(ctx).
		Where(containsClause(r.db, "name"), containsPattern(query)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return merchantsToDomain(rows), nil
}

// ExistsByID checks whether a merchant exists
func (r *GormMerchantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MerchantModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new merchant and copies the generated ID back
func (r *GormMerchantRepository) Create(ctx context.Context, merchant *catalog.Merchant) error {
	model := models.MerchantModelFromDomain(merchant)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	merchant.ID = model.ID
	return nil
}

func merchantsToDomain(rows []models.MerchantModel) []catalog.Merchant {
	merchants := make([]catalog.Merchant, len(rows))
	for i := range rows {
		merchants[i] = *rows[i].ToDomain()
	}
	return merchants
}

// Ensure GormMerchantRepository implements MerchantRepository interface
var _ catalog.MerchantRepository = (*GormMerchantRepository)(nil)
