package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// MerchantService handles merchant reads
type MerchantService struct {
	merchantRepo catalog.MerchantRepository
	itemRepo     catalog.ItemRepository
}

// NewMerchantService creates a new MerchantService
func NewMerchantService(merchantRepo catalog.MerchantRepository, itemRepo catalog.ItemRepository) *MerchantService {
	return &MerchantService{
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
	}
}

// List returns one page of merchants in storage order
func (s *MerchantService) List(ctx context.Context, page shared.Page) ([]MerchantResponse, error) {
	merchants, err := s.merchantRepo.FindAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return ToMerchantResponses(merchants), nil
}

// GetByID retrieves a merchant by ID
func (s *MerchantService) GetByID(ctx context.Context, id int64) (*MerchantResponse, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToMerchantResponse(merchant)
	return &response, nil
}

// FindByName returns the alphabetically first merchant whose name contains query,
// or nil when none does
func (s *MerchantService) FindByName(ctx context.Context, query string) (*MerchantResponse, error) {
	merchants, err := s.merchantRepo.FindByNameContaining(ctx, query)
	if err != nil {
		return nil, err
	}
	best := catalog.FirstMerchantByName(merchants)
	if best == nil {
		return nil, nil
	}
	response := ToMerchantResponse(best)
	return &response, nil
}

// ListItems returns a merchant's items in storage order
func (s *MerchantService) ListItems(ctx context.Context, merchantID int64) ([]ItemResponse, error) {
	exists, err := s.merchantRepo.ExistsByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFoundError("merchant", merchantID)
	}

	items, err := s.itemRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}
