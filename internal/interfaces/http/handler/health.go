package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Pinger checks a dependency's reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the service and its database
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.For(c.Request.Context()).Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
