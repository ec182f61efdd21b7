package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		counts   Counts
		seed     uint64
		logLevel string
	)
	flag.IntVar(&counts.Merchants, "merchants", 10, "Number of merchants")
	flag.IntVar(&counts.ItemsPerMerchant, "items", 20, "Items per merchant")
	flag.IntVar(&counts.Customers, "customers", 50, "Number of customers")
	flag.IntVar(&counts.Invoices, "invoices", 200, "Number of invoices")
	flag.IntVar(&counts.MaxLineEntries, "max-lines", 5, "Maximum line entries per invoice")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(config.LogConfig{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log, logger.GormLevel("warn"), time.Second))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Seeding database",
		zap.String("database", cfg.Database.DBName),
		zap.Uint64("seed", seed),
		zap.Int("merchants", counts.Merchants),
		zap.Int("items_per_merchant", counts.ItemsPerMerchant),
		zap.Int("invoices", counts.Invoices),
	)

	summary, err := NewSeeder(db.DB, seed, log).Run(ctx, counts)
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding complete",
		zap.Int("merchants", summary.Merchants),
		zap.Int("items", summary.Items),
		zap.Int("customers", summary.Customers),
		zap.Int("invoices", summary.Invoices),
		zap.Int("line_entries", summary.LineEntries),
		zap.Int("transactions", summary.Transactions),
	)
}
