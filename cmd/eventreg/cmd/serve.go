package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"eventreg/internal/adapters/httpapi"
	"eventreg/internal/application"
	"eventreg/internal/infrastructure/i18n"
)

var (
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API and serve until SIGINT or SIGTERM.

Examples:
  # Start with the configuration from the environment
  eventreg serve

  # Use an embedded SQLite file on another port
  DATABASE_DRIVER=sqlite eventreg serve --port 9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: SERVER_HOST or 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: SERVER_PORT or 8000)")
}

func runServer(parent context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("environment", cfg.Environment).
		Str("driver", cfg.Database.Driver).
		Msg("starting eventreg")

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	handler := httpapi.NewHandler(
		application.NewEventService(store, logger),
		application.NewRegistrationService(store, logger),
		application.NewQueryService(store),
		i18n.NewTranslator(cfg.DefaultLocale, logger),
		store,
		cfg.Location(),
		logger,
	)
	server := httpapi.NewServer(httpapi.ServerConfig{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		RateLimitPerMin: cfg.RateLimit.PerMinute,
		RateLimitBurst:  cfg.RateLimit.Burst,
	}, handler, logger)

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
