package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		seedFile = ""
		migrateSteps = 1
		logLevel, logFormat = "", ""
		if f := rootCmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
		}
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func useSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_SQLITE_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func TestHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "eventreg manages events and attendee registrations")
	assert.Contains(t, out, "Start the HTTP API")
	for _, name := range []string{"serve", "migrate", "seed"} {
		assert.Contains(t, out, name)
	}
}

func TestUnknownFlag(t *testing.T) {
	out, err := execute(t, "--invalid-flag")
	require.Error(t, err)
	assert.Contains(t, out, "unknown flag: --invalid-flag")
}

func TestMigrateDownRejectsZeroSteps(t *testing.T) {
	_, err := execute(t, "migrate", "down", "--steps", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--steps")
}

func TestMigrateUpAndDownOnSQLite(t *testing.T) {
	path := useSQLite(t)

	_, err := execute(t, "migrate", "up")
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "migrate", "down", "--steps", "2")
	require.NoError(t, err)
}

func TestSeedDemoOnSQLite(t *testing.T) {
	useSQLite(t)

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "events created: 3, skipped: 0; attendees registered: 5, rejected: 1")
}

func TestSeedMissingFile(t *testing.T) {
	useSQLite(t)

	_, err := execute(t, "seed", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read fixture")
}
