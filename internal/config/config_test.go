package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "clinicflow-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "false")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("TRACING_SAMPLE_RATE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 0.1, cfg.Tracing.SampleRate, 1e-9)
}

func TestValidateProductionRules(t *testing.T) {
	t.Run("missing password outside development", func(t *testing.T) {
		t.Setenv("APP_ENV", "staging")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})

	t.Run("ssl disabled in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_SSLMODE")
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "clinicflow",
		User: "app", Password: "pw", SSLMode: "require",
	}
	assert.Equal(t,
		"host=localhost user=app password=pw dbname=clinicflow port=5432 sslmode=require TimeZone=UTC",
		d.DSN(),
	)
}
