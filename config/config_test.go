package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/uno/config"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()
	previous, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, previous)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, config.Default(), c)
	})

	t.Run("reads_the_environment", func(t *testing.T) {
		setenv(t, "UNO_MAX_TABLES", "8")
		setenv(t, "UNO_IDLE_TIMEOUT", "90s")
		setenv(t, "UNO_SWEEP_INTERVAL", "5s")
		setenv(t, "UNO_SEED", "42")

		c, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, config.Config{
			MaxTables:     8,
			IdleTimeout:   90 * time.Second,
			SweepInterval: 5 * time.Second,
			Seed:          42,
		}, c)
	})

	t.Run("rejects_malformed_values", func(t *testing.T) {
		setenv(t, "UNO_IDLE_TIMEOUT", "soon")

		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("rejects_a_non_positive_table_limit", func(t *testing.T) {
		setenv(t, "UNO_MAX_TABLES", "0")

		_, err := config.Load()
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads_a_dotenv_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("UNO_MAX_TABLES=3\nUNO_SEED=9\n"), 0o600))
		setenv(t, "UNO_SEED", "11")
		t.Cleanup(func() { _ = os.Unsetenv("UNO_MAX_TABLES") })

		c, err := config.LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, 3, c.MaxTables)
		require.Equal(t, int64(11), c.Seed)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})
}
