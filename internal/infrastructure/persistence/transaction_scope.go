package persistence

import (
	"context"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// A non-nil error from fn rolls the transaction back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Items returns the item repository scoped to the current transaction
func (r *gormTransactionalRepositories) Items() catalog.ItemRepository {
	return NewGormItemRepository(r.tx)
}

// Merchants returns the merchant repository scoped to the current transaction
func (r *gormTransactionalRepositories) Merchants() catalog.MerchantRepository {
	return NewGormMerchantRepository(r.tx)
}

var (
	_ appcatalog.TransactionScope          = (*GormTransactionScope)(nil)
	_ appcatalog.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
