package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reportapp "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// RevenueHandler serves revenue reports
type RevenueHandler struct {
	BaseHandler
	revenueService *reportapp.RevenueService
}

// NewRevenueHandler creates a new RevenueHandler
func NewRevenueHandler(revenueService *reportapp.RevenueService) *RevenueHandler {
	return &RevenueHandler{
		revenueService: revenueService,
	}
}

// Merchant handles GET /revenue/merchants/:id
func (h *RevenueHandler) Merchant(c *gin.Context) {
	id, err := parseID(c, "merchant")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	revenue, err := h.revenueService.MerchantRevenue(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.Single(dto.MerchantRevenueResource(*revenue)))
}

// TopItems handles GET /revenue/items?count=
// A missing or non-integer count is rejected like a zero count.
func (h *RevenueHandler) TopItems(c *gin.Context) {
	ranking, err := h.revenueService.TopItems(c.Request.Context(), deref(queryInt(c, "count")))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.List(dto.ItemRevenueResources(ranking)))
}

// Range handles GET /revenue?start_date=&end_date=
func (h *RevenueHandler) Range(c *gin.Context) {
	revenue, err := h.revenueService.RevenueBetween(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.Single(dto.RangeRevenueResource(*revenue)))
}
