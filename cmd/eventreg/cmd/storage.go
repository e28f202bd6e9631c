package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"eventreg/internal/config"
	"eventreg/internal/infrastructure/database"
	"eventreg/internal/infrastructure/sqlite"
	"eventreg/internal/metrics"
	"eventreg/internal/ports/output"
)

// openStore connects the configured backend. PostgreSQL is migrated when
// DATABASE_AUTO_MIGRATE is set; the SQLite file is always brought up to date.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (output.Store, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Database.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.DriverPostgres:
		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(cfg.Database.URL, logger); err != nil {
				return nil, nil, err
			}
		}
		pool, err := database.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConnections, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := metrics.RegisterPool(pool); err != nil {
			logger.Warn().Err(err).Msg("pool metrics not registered")
		}
		return database.NewStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
