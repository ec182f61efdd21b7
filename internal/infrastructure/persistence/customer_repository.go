package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository stores customers. Only the seeder writes them; the
// API reads them through invoices.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	row, err := firstByID[models.CustomerModel](ctx, r.db, "customer", id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// Create inserts customer and assigns the generated ID to it
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	row := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	customer.ID = row.ID
	return nil
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
