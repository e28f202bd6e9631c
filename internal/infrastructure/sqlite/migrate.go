package sqlite

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"

	"eventreg/internal/infrastructure/sqlite/migrations"
)

// RunMigrations applies all pending migrations to the database file at path.
func RunMigrations(path string, logger zerolog.Logger) error {
	m, err := newMigrator(path)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Debug().Uint("version", version).Bool("dirty", dirty).Str("path", path).Msg("sqlite migrations applied")
	return nil
}

// RollbackMigrations reverts the last steps migrations, or all of them when
// steps <= 0.
func RollbackMigrations(path string, steps int, logger zerolog.Logger) error {
	m, err := newMigrator(path)
	if err != nil {
		return err
	}
	defer m.Close()

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down: %w", err)
	}
	logger.Info().Int("steps", steps).Str("path", path).Msg("sqlite migrations rolled back")
	return nil
}

func newMigrator(path string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("migration init: %w", err)
	}
	return m, nil
}
