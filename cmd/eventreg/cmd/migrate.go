package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventreg/internal/config"
	"eventreg/internal/infrastructure/database"
	"eventreg/internal/infrastructure/sqlite"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if cfg.Database.Driver == config.DriverSQLite {
			return sqlite.RunMigrations(cfg.Database.SQLitePath, logger)
		}
		return database.RunMigrations(cfg.Database.URL, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	Example: `  # Undo the last migration
  eventreg migrate down --steps 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateSteps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if cfg.Database.Driver == config.DriverSQLite {
			return sqlite.RollbackMigrations(cfg.Database.SQLitePath, migrateSteps, logger)
		}
		return database.RollbackMigrations(cfg.Database.URL, migrateSteps, logger)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
