package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"eventreg/pkg/tz"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const defaultDatabaseURL = "postgres://localhost:5432/eventreg?sslmode=disable"

type Config struct {
	Environment     string `env:"ENVIRONMENT" envDefault:"development"`
	DefaultTimezone string `env:"DEFAULT_TIMEZONE" envDefault:"Asia/Kolkata"`
	DefaultLocale   string `env:"DEFAULT_LOCALE" envDefault:"en"`

	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig

	location *time.Location
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type DatabaseConfig struct {
	Driver         string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	URL            string `env:"DATABASE_URL"`
	SQLitePath     string `env:"DATABASE_SQLITE_PATH" envDefault:"eventreg.db"`
	MaxConnections int32  `env:"DATABASE_MAX_CONNECTIONS" envDefault:"10"`
	AutoMigrate    bool   `env:"DATABASE_AUTO_MIGRATE" envDefault:"true"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type RateLimitConfig struct {
	// PerMinute <= 0 disables the limiter.
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Location is the zone used when a request names none and for naive
// timestamps.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return tz.Default
	}
	return c.location
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	loc, err := tz.Resolve(c.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("config: DEFAULT_TIMEZONE: %w", err)
	}
	c.location = loc

	switch strings.ToLower(strings.TrimSpace(c.Database.Driver)) {
	case DriverPostgres:
		c.Database.Driver = DriverPostgres
		if strings.TrimSpace(c.Database.URL) == "" {
			c.Database.URL = defaultDatabaseURL
		}
		parsed, err := url.Parse(c.Database.URL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.Database.URL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.Database.URL)
		}
	case DriverSQLite:
		c.Database.Driver = DriverSQLite
		if strings.TrimSpace(c.Database.SQLitePath) == "" {
			return fmt.Errorf("config: DATABASE_SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("config: DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.RateLimit.PerMinute > 0 && c.RateLimit.Burst < 1 {
		c.RateLimit.Burst = 1
	}
	return nil
}
