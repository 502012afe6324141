package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.RunMigrations)
	require.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("RUN_SEED", "false")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg := Load()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.False(t, cfg.RunSeed)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("RUN_MIGRATIONS", "maybe")

	cfg := Load()
	require.Equal(t, 12*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.RunMigrations)
}

func TestValidate(t *testing.T) {
	valid := Config{
		DatabaseURL:  "postgres://localhost/payroll",
		JWTSecret:    "secret",
		TokenTTL:     time.Hour,
		MaxBodyBytes: 1048576,
	}
	require.NoError(t, valid.Validate())

	missingDB := valid
	missingDB.DatabaseURL = ""
	require.Error(t, missingDB.Validate())

	missingSecret := valid
	missingSecret.JWTSecret = " "
	require.Error(t, missingSecret.Validate())

	prodSeedNoPassword := valid
	prodSeedNoPassword.Environment = "production"
	prodSeedNoPassword.RunSeed = true
	require.Error(t, prodSeedNoPassword.Validate())
}
