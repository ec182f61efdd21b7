package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ItemHandler serves item CRUD and search
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// ItemRequest is the body of item create and update requests.
// Omitted fields stay nil; create treats them as blank.
type ItemRequest struct {
	Name        *string     `json:"name" binding:"omitempty,max=255"`
	Description *string     `json:"description" binding:"omitempty,max=5000"`
	UnitPrice   *priceParam `json:"unit_price"`
	MerchantID  *int64      `json:"merchant_id"`
}

// List handles GET /items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.List(dto.ItemResources(items)))
}

// Get handles GET /items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := parseID(c, "item")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.Single(dto.ItemResource(*item)))
}

// Create handles POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req ItemRequest
	if err := bindJSON(c, &req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), catalogapp.CreateItemInput{
		Name:        deref(req.Name),
		Description: deref(req.Description),
		UnitPrice:   req.UnitPrice.decimal(),
		MerchantID:  deref(req.MerchantID),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusCreated, dto.Single(dto.ItemResource(*item)))
}

// Update handles PATCH and PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := parseID(c, "item")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	var req ItemRequest
	if err := bindJSON(c, &req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, catalogapp.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice.decimal(),
		MerchantID:  req.MerchantID,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusAccepted, dto.Single(dto.ItemResource(*item)))
}

// Delete handles DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "item")
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// FindAll handles GET /items/find_all?name= or ?min_price=&max_price=
func (h *ItemHandler) FindAll(c *gin.Context) {
	search, err := catalog.ParseItemSearch(
		queryString(c, "name"),
		queryString(c, "min_price"),
		queryString(c, "max_price"),
	)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	items, err := h.itemService.Search(c.Request.Context(), search)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Render(c, http.StatusOK, dto.List(dto.ItemResources(items)))
}
