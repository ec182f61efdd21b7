package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Handlers are the resource handlers mounted by NewEngine
type Handlers struct {
	Items     *handler.ItemHandler
	Merchants *handler.MerchantHandler
	Revenue   *handler.RevenueHandler
	Health    *handler.HealthHandler
}

// Options carry the cross-cutting pieces of the HTTP stack.
// Nil Metrics disables /metrics, nil Limiter disables rate limiting,
// and a nil TracerProvider skips tracing.
type Options struct {
	Logger         *zap.Logger
	HTTP           config.HTTPConfig
	ServiceName    string
	MetricsPath    string
	Metrics        *telemetry.Metrics
	Limiter        middleware.Limiter
	TracerProvider trace.TracerProvider
}

// NewEngine builds the gin engine with middleware and every route
func NewEngine(h Handlers, opts Options) (*gin.Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	if opts.TracerProvider != nil {
		engine.Use(middleware.Tracing(opts.ServiceName, opts.TracerProvider)...)
	}
	engine.Use(logger.GinMiddleware(log))
	if opts.Metrics != nil {
		engine.Use(opts.Metrics.Middleware())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.NewCORSConfig(opts.HTTP)))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Route not found"})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Message: "Method not allowed"})
	})

	if h.Health != nil {
		engine.GET("/health", h.Health.Check)
	}
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(opts.Metrics.Handler()))
	}

	api := []gin.HandlerFunc{middleware.BodyLimit(opts.HTTP.MaxBodySize)}
	if opts.Limiter != nil {
		api = append(api, middleware.RateLimit(opts.Limiter, log))
	}

	NewRouter(engine).Register(
		ItemRoutes(h.Items).Use(api...),
		MerchantRoutes(h.Merchants).Use(api...),
		RevenueRoutes(h.Revenue).Use(api...),
	).Setup()

	return engine, nil
}

// ItemRoutes mounts /items
func ItemRoutes(h *handler.ItemHandler) *DomainGroup {
	return NewDomainGroup("items", "/items").
		GET("/find_all", h.FindAll).
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.Get).
		PATCH("/:id", h.Update).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

// MerchantRoutes mounts /merchants
func MerchantRoutes(h *handler.MerchantHandler) *DomainGroup {
	return NewDomainGroup("merchants", "/merchants").
		GET("/find", h.Find).
		GET("", h.List).
		GET("/:id", h.Get).
		GET("/:id/items", h.Items)
}

// RevenueRoutes mounts /revenue
func RevenueRoutes(h *handler.RevenueHandler) *DomainGroup {
	return NewDomainGroup("revenue", "/revenue").
		GET("", h.Range).
		GET("/items", h.TopItems).
		GET("/merchants/:id", h.Merchant)
}
