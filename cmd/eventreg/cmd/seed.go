package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventreg/internal/application"
	"eventreg/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture events and registrations",
	Long: `Load events and attendees from a YAML fixture through the regular
registration rules. Without --file the built-in demo fixture is used. Events
that already exist are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		fixture, err := loadFixture()
		if err != nil {
			return err
		}

		store, closeStore, err := openStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		seeder := seed.NewSeeder(
			application.NewEventService(store, logger),
			application.NewRegistrationService(store, logger),
			cfg.Location(),
			logger,
		)
		res, err := seeder.Apply(cmd.Context(), fixture)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "events created: %d, skipped: %d; attendees registered: %d, rejected: %d\n",
			res.EventsCreated, res.EventsSkipped, res.AttendeesRegistered, res.AttendeesRejected)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "fixture file (default: built-in demo data)")
}

func loadFixture() (*seed.Fixture, error) {
	if seedFile == "" {
		return seed.Demo()
	}
	return seed.LoadFile(seedFile)
}
