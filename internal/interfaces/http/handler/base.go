package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler renders documents and errors for the resource handlers
type BaseHandler struct{}

// Render writes a JSON document with status
func (h *BaseHandler) Render(c *gin.Context, status int, doc dto.Document) {
	c.JSON(status, doc)
}

// NoContent writes an empty 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandleDomainError writes the status and message for err.
// Unexpected failures are logged and never leak their text.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	status, body := dto.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.For(c.Request.Context()).Error("request failed", zap.Error(err))
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is reported as not found.
func parseID(c *gin.Context, entity string) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, shared.NewNotFoundError(entity, raw)
	}
	return id, nil
}

// queryInt returns nil when key is absent or not an integer
func queryInt(c *gin.Context, key string) *int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

// queryString returns nil when key is absent
func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &raw
}

// pageFromQuery resolves page and per_page
func pageFromQuery(c *gin.Context) shared.Page {
	return shared.ResolvePage(queryInt(c, "page"), queryInt(c, "per_page"))
}

// bindJSON decodes the request body into obj. An empty body decodes as {}.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return middleware.BindingError(err)
}

// priceParam accepts a price as a JSON number or numeric string
type priceParam decimal.Decimal

// UnmarshalJSON implements json.Unmarshaler
func (p *priceParam) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(float64(0))}
	}
	*p = priceParam(d)
	return nil
}

func (p *priceParam) decimal() *decimal.Decimal {
	return (*decimal.Decimal)(p)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
