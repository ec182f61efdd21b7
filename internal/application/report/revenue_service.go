package report

import (
	"context"

	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// RevenueService answers revenue questions over shipped, paid invoices
type RevenueService struct {
	revenueRepo report.RevenueRepository
	logger      *zap.Logger
}

// NewRevenueService creates a new RevenueService
func NewRevenueService(revenueRepo report.RevenueRepository, logger *zap.Logger) *RevenueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RevenueService{
		revenueRepo: revenueRepo,
		logger:      logger,
	}
}

// MerchantRevenue returns a merchant's total revenue.
// Unknown merchants yield a not-found error, merchants without sales yield zero.
func (s *RevenueService) MerchantRevenue(ctx context.Context, merchantID int64) (_ *MerchantRevenueResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "revenue", "merchant", attribute.Int64("merchant_id", merchantID))
	defer func() { telemetry.EndSpan(span, err) }()

	revenue, err := s.revenueRepo.MerchantRevenue(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	response := ToMerchantRevenueResponse(revenue)
	return &response, nil
}

// TopItems returns the count items with the highest revenue
func (s *RevenueService) TopItems(ctx context.Context, count int) (_ []ItemRevenueResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "revenue", "top_items", attribute.Int("count", count))
	defer func() { telemetry.EndSpan(span, err) }()

	if err = report.ValidateTopCount(count); err != nil {
		return nil, err
	}
	ranking, err := s.revenueRepo.TopItemsByRevenue(ctx, count)
	if err != nil {
		return nil, err
	}
	return ToItemRevenueResponses(ranking), nil
}

// RevenueBetween returns revenue for invoices created from startDate through endDate.
// Both dates are YYYY-MM-DD and the whole end day is included.
func (s *RevenueService) RevenueBetween(ctx context.Context, startDate, endDate string) (_ *RangeRevenueResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "revenue", "between",
		attribute.String("start_date", startDate),
		attribute.String("end_date", endDate),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	dates, err := report.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	from, until := dates.Bounds()
	total, err := s.revenueRepo.RevenueBetween(ctx, from, until)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("computed range revenue",
		zap.Time("from", from),
		zap.Time("until", until),
		zap.String("revenue", total.String()),
	)

	return &RangeRevenueResponse{
		StartDate: dates.Start.Format(report.DateLayout),
		EndDate:   dates.End.Format(report.DateLayout),
		Revenue:   total,
	}, nil
}
