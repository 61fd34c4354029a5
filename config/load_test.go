package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/config"
)

func TestLoad_MemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTO_MIGRATE", "")
	t.Setenv("DB_MAX_CONNS", "")

	cfg := config.Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, config.DriverMemory, cfg.StoreDriver)
	require.Equal(t, "dev", cfg.Env)
	require.True(t, cfg.AutoMigrate)
	require.EqualValues(t, 10, cfg.DBMaxConns)
}

func TestLoad_PortOverrideAndFlags(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PORT", "7000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("AUTO_MIGRATE", "")
	t.Setenv("DB_MAX_CONNS", "nope")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := config.Load()
	require.Equal(t, "7000", cfg.Port)
	require.False(t, cfg.AutoMigrate)
	require.EqualValues(t, 10, cfg.DBMaxConns)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	require.Panics(t, func() { config.Load() })
}
