package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "internal/infrastructure/migration/sql"

var errUsage = errors.New("invalid usage")

func main() {
	var (
		dir      string
		logLevel string
	)
	flag.StringVar(&dir, "dir", defaultMigrationsDir, "Directory new migrations are written to (create only)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	log, err := logger.New(config.LogConfig{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(args[0], args[1:], dir, log); err != nil {
		if errors.Is(err, errUsage) {
			log.Error(err.Error())
			printUsage()
			os.Exit(2)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(command string, args []string, dir string, log *zap.Logger) error {
	switch command {
	case "create":
		if len(args) < 1 {
			return fmt.Errorf("%w: migrate create <name>", errUsage)
		}
		entry, err := migration.Create(dir, args[0])
		if err != nil {
			return err
		}
		log.Info("Migration created",
			zap.Uint64("version", entry.Version),
			zap.String("up_file", entry.FileName("up")),
			zap.String("down_file", entry.FileName("down")),
		)
		return nil
	case "list":
		entries, err := migration.Embedded()
		if err != nil {
			return err
		}
		log.Info("Embedded migrations", zap.Int("count", len(entries)))
		for _, e := range entries {
			fmt.Printf("  %06d  %s (up=%t down=%t)\n", e.Version, e.Name, e.HasUp, e.HasDown)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := migration.New(db, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "steps":
		n, err := intArg(args, "steps <n>")
		if err != nil {
			return err
		}
		return m.Steps(n)
	case "goto":
		v, err := intArg(args, "goto <version>")
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("%w: version must not be negative", errUsage)
		}
		return m.GoTo(uint(v))
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		if version == 0 {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	case "force":
		v, err := intArg(args, "force <version>")
		if err != nil {
			return err
		}
		return m.Force(v)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func intArg(args []string, usage string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%w: migrate %s", errUsage, usage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errUsage, args[0])
	}
	return n, nil
}

func printUsage() {
	fmt.Println(`Storefront database migrations

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                Apply all pending migrations
  down              Roll back all migrations
  steps <n>         Apply n migrations (negative rolls back)
  goto <version>    Migrate up or down to a specific version
  version           Show the applied version
  force <version>   Record a version without running it (clears a dirty state)
  create <name>     Write an empty up/down pair to -dir
  list              List the migrations compiled into this binary

Flags:
  -dir string        Directory for create (default: internal/infrastructure/migration/sql)
  -log-level string  debug, info, warn, error (default: info)

Connection settings come from config.toml, .env and STOREFRONT_DATABASE_* variables.`)
}
