package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// TransactionScope runs catalog writes atomically.
// Every repository handed to fn shares one database transaction, which is
// committed when fn returns nil and rolled back otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the catalog repositories bound to the current transaction
type TransactionalRepositories interface {
	Items() catalog.ItemRepository
	Merchants() catalog.MerchantRepository
}

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// Useful in tests.
type NoOpTransactionScope struct {
	items     catalog.ItemRepository
	merchants catalog.MerchantRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(items catalog.ItemRepository, merchants catalog.MerchantRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{items: items, merchants: merchants}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Items returns the item repository
func (s *NoOpTransactionScope) Items() catalog.ItemRepository {
	return s.items
}

// Merchants returns the merchant repository
func (s *NoOpTransactionScope) Merchants() catalog.MerchantRepository {
	return s.merchants
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
