package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService handles item reads, searches and writes
type ItemService struct {
	scope          TransactionScope
	itemRepo       catalog.ItemRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewItemService creates a new ItemService.
// eventPublisher may be nil, in which case item events are dropped.
func NewItemService(
	scope TransactionScope,
	itemRepo catalog.ItemRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ItemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemService{
		scope:          scope,
		itemRepo:       itemRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// List returns one page of items in storage order
func (s *ItemService) List(ctx context.Context, page shared.Page) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, id int64) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// Search runs a name or price search.
// Name matches come back ordered by lowercased name, descending.
func (s *ItemService) Search(ctx context.Context, search catalog.ItemSearch) ([]ItemResponse, error) {
	var (
		items []catalog.Item
		err   error
	)
	switch f := search.(type) {
	case catalog.NameFilter:
		items, err = s.itemRepo.FindByNameContaining(ctx, f.Query)
		if err == nil {
			catalog.SortItemsByNameDesc(items)
		}
	case catalog.PriceFilter:
		items, err = s.itemRepo.FindByPriceRange(ctx, f.Min, f.Max)
	default:
		return nil, shared.NewBadRequestError("a name or min_price/max_price parameter is required")
	}
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// Create validates and stores a new item
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*ItemResponse, error) {
	attrs := in.attributes()

	var item *catalog.Item
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		violations := attrs.Violations()
		if attrs.MerchantID > 0 {
			if err := checkMerchant(ctx, repos.Merchants(), attrs.MerchantID, &violations); err != nil {
				return err
			}
		}
		if err := violations.Err(); err != nil {
			return err
		}

		var err error
		item, err = catalog.NewItem(attrs)
		if err != nil {
			return err
		}
		if err := repos.Items().Create(ctx, item); err != nil {
			return err
		}
		item.RecordCreated()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, item)
	response := ToItemResponse(item)
	return &response, nil
}

// Update applies a partial update to an existing item
func (s *ItemService) Update(ctx context.Context, id int64, in UpdateItemInput) (*ItemResponse, error) {
	patch := in.patch()

	var item *catalog.Item
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = repos.Items().FindByID(ctx, id)
		if err != nil {
			return err
		}

		attrs := item.Patched(patch)
		violations := attrs.Violations()
		if patch.MerchantID != nil && attrs.MerchantID > 0 && attrs.MerchantID != item.MerchantID {
			if err := checkMerchant(ctx, repos.Merchants(), attrs.MerchantID, &violations); err != nil {
				return err
			}
		}
		if err := violations.Err(); err != nil {
			return err
		}

		if err := item.Apply(patch); err != nil {
			return err
		}
		return repos.Items().Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, item)
	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an item that no invoice line entry references
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	var item *catalog.Item
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		item, err = repos.Items().FindByID(ctx, id)
		if err != nil {
			return err
		}

		referenced, err := repos.Items().HasLineEntries(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return shared.NewInvalidStateError("Cannot delete an item that appears on invoices")
		}

		if err := repos.Items().Delete(ctx, id); err != nil {
			return err
		}
		item.RecordDeleted()
		return nil
	})
	if err != nil {
		return err
	}

	s.publishDomainEvents(ctx, item)
	return nil
}

// publishDomainEvents publishes the item's pending events once its transaction has committed
func (s *ItemService) publishDomainEvents(ctx context.Context, item *catalog.Item) {
	defer item.ClearDomainEvents()
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish item events",
			zap.Int64("item_id", item.ID),
			zap.Error(err),
		)
	}
}

func checkMerchant(ctx context.Context, merchants catalog.MerchantRepository, id int64, violations *shared.Violations) error {
	exists, err := merchants.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		violations.Add("merchant", "must exist")
	}
	return nil
}
