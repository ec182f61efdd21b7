package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	reportapp "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/event"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped with error", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer provider shutdown failed", zap.Error(err))
		}
	}()

	gormLogger := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		return err
	}
	defer func() {
		if stats, err := db.Stats(); err == nil {
			log.Info("Closing database",
				zap.Int("open_connections", stats.OpenConnections),
				zap.Int64("wait_count", stats.WaitCount),
				zap.Duration("wait_duration", stats.WaitDuration),
			)
		}
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	if cfg.Telemetry.DBTraceEnabled {
		plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBName:          cfg.Database.DBName,
			TracerProvider:  tp.Provider(),
		}, log)
		if err := plugin.Register(db.DB); err != nil {
			return err
		}
	}

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.NewMetrics()
		sqlDB, err := db.DB.DB()
		if err != nil {
			return err
		}
		if err := metrics.RegisterDB(sqlDB, cfg.Database.DBName); err != nil {
			return err
		}
	}

	bus, closeBus, err := newEventBus(cfg.Event, metrics, log)
	if err != nil {
		return err
	}
	defer closeBus()

	limiter, closeLimiter, err := newLimiter(cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	itemRepo := persistence.NewGormItemRepository(db.DB)
	merchantRepo := persistence.NewGormMerchantRepository(db.DB)
	revenueRepo := persistence.NewGormRevenueRepository(db.DB)

	itemService := catalogapp.NewItemService(persistence.NewGormTransactionScope(db.DB), itemRepo, bus, log)
	merchantService := catalogapp.NewMerchantService(merchantRepo, itemRepo)
	revenueService := reportapp.NewRevenueService(revenueRepo, log)

	engine, err := router.NewEngine(router.Handlers{
		Items:     handler.NewItemHandler(itemService),
		Merchants: handler.NewMerchantHandler(merchantService),
		Revenue:   handler.NewRevenueHandler(revenueService),
		Health:    handler.NewHealthHandler(db),
	}, router.Options{
		Logger:         log,
		HTTP:           cfg.HTTP,
		ServiceName:    cfg.Telemetry.ServiceName,
		MetricsPath:    cfg.Metrics.Path,
		Metrics:        metrics,
		Limiter:        limiter,
		TracerProvider: tp.Provider(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newEventBus always logs item events and also forwards them to AMQP when enabled
func newEventBus(cfg config.EventConfig, metrics *telemetry.Metrics, log *zap.Logger) (shared.EventPublisher, func(), error) {
	bus := event.NewInMemoryEventBus(log)
	if metrics != nil {
		bus = bus.WithObserver(metrics)
	}
	bus.Subscribe(event.NewLoggingHandler(log))

	if !cfg.AMQPEnabled {
		return bus, func() {}, nil
	}
	publisher, err := event.NewAMQPPublisher(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	bus.Subscribe(publisher)
	log.Info("Publishing item events to AMQP", zap.String("exchange", cfg.Exchange))
	return bus, func() {
		if err := publisher.Close(); err != nil {
			log.Warn("Failed to close AMQP publisher", zap.Error(err))
		}
	}, nil
}

// newLimiter prefers the shared Redis limiter and falls back to an in-process one
func newLimiter(cfg *config.Config, log *zap.Logger) (middleware.Limiter, func(), error) {
	if !cfg.HTTP.RateLimitEnabled {
		return nil, func() {}, nil
	}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using Redis rate limiter", zap.String("addr", cfg.Redis.Addr()))
		limiter := cache.NewRedisRateLimiter(client, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		return limiter, func() {
			if err := client.Close(); err != nil {
				log.Warn("Failed to close Redis client", zap.Error(err))
			}
		}, nil
	}
	limiter := middleware.NewMemoryRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	return limiter, limiter.Close, nil
}
