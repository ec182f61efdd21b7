package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// MerchantHandler serves merchant reads
type MerchantHandler struct {
	BaseHandler
	merchantService *catalogapp.MerchantService
}

// NewMerchantHandler creates a new MerchantHandler
func NewMerchantHandler(merchantService *catalogapp.MerchantService) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

// List handles GET /merchants
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := h.merchantService.List(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.List(dto.MerchantResources(merchants)))
}

// Get handles GET /merchants/:id
func (h *MerchantHandler) Get(c *gin.Context) {
	id, err := parseID(c, "merchant")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	merchant, err := h.merchantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.Single(dto.MerchantResource(*merchant)))
}

// Find handles GET /merchants/find?name=
func (h *MerchantHandler) Find(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		h.HandleDomainError(c, shared.NewBadRequestError("a name parameter is required"))
		return
	}
	merchant, err := h.merchantService.FindByName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if merchant == nil {
		h.Render(c, http.StatusOK, dto.Empty())
		return
	}
	h.Render(c, http.StatusOK, dto.Single(dto.MerchantResource(*merchant)))
}

// Items handles GET /merchants/:id/items
func (h *MerchantHandler) Items(c *gin.Context) {
	id, err := parseID(c, "merchant")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	items, err := h.merchantService.ListItems(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.List(dto.ItemResources(items)))
}
