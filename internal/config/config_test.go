package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, defaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.EqualValues(t, 10, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadSQLite(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_SQLITE_PATH", "/tmp/events.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Paris")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/events.db", cfg.Database.SQLitePath)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "Europe/Paris", cfg.Location().String())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown driver", env: map[string]string{"DATABASE_DRIVER": "mysql"}, want: "DATABASE_DRIVER"},
		{name: "url without host", env: map[string]string{"DATABASE_URL": "postgres:///eventreg"}, want: "DATABASE_URL"},
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}, want: "SERVER_PORT"},
		{name: "unknown timezone", env: map[string]string{"DEFAULT_TIMEZONE": "Mars/Base"}, want: "DEFAULT_TIMEZONE"},
		{name: "empty sqlite path", env: map[string]string{"DATABASE_DRIVER": "sqlite", "DATABASE_SQLITE_PATH": " "}, want: "DATABASE_SQLITE_PATH"},
		{name: "malformed duration", env: map[string]string{"SERVER_READ_TIMEOUT": "soon"}, want: "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLoggerWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LoggingConfig{Level: "WARN", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "test").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LoggingConfig{Level: "verbose"}, &buf)

	assert.Equal(t, "info", logger.GetLevel().String())
}
