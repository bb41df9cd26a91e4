package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, "UTC", cfg.Location().String())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TIME_ZONE", "Asia/Tokyo")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "Asia/Tokyo", cfg.Location().String())
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver: sqlite\ndb_name: tasks.db\nport: \"9000\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "tasks.db", cfg.DBName)
	assert.Equal(t, "9100", cfg.Port, "environment should win over the file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown time zone", func(t *testing.T) {
		t.Setenv("TIME_ZONE", "Mars/Olympus")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("short session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "short")
		_, err := Load()
		require.Error(t, err)
	})
}
