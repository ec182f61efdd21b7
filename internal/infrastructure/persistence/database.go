package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/storefront/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 10 * time.Second

// Database wraps the gorm handle shared by every repository
type Database struct {
	DB *gorm.DB
}

// NewDatabaseWithLogger opens the catalog database, sizes its pool from cfg and
// verifies the server answers before returning.
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	db := &Database{DB: gdb}
	pool, err := db.pool()
	if err != nil {
		return nil, err
	}
	applyPoolLimits(pool, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("catalog database unreachable at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return db, nil
}

func applyPoolLimits(pool *sql.DB, cfg *config.DatabaseConfig) {
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql pool: %w", err)
	}
	return pool, nil
}

// Close releases every pooled connection
func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Ping backs the readiness probe
func (d *Database) Ping(ctx context.Context) error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.PingContext(ctx)
}

// ConnectionStats is the subset of sql.DBStats logged at shutdown
type ConnectionStats struct {
	MaxOpenConnections int
	OpenConnections    int
	InUse              int
	Idle               int
	WaitCount          int64
	WaitDuration       time.Duration
}

func (d *Database) Stats() (ConnectionStats, error) {
	pool, err := d.pool()
	if err != nil {
		return ConnectionStats{}, err
	}
	s := pool.Stats()
	return ConnectionStats{
		MaxOpenConnections: s.MaxOpenConnections,
		OpenConnections:    s.OpenConnections,
		InUse:              s.InUse,
		Idle:               s.Idle,
		WaitCount:          s.WaitCount,
		WaitDuration:       s.WaitDuration,
	}, nil
}
