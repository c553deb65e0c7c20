package config

import (
	"os"
	"path/filepath"
	"testing"

	"bike-rental-billing/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, StandardPlans, cfg.Pricing.Plans)
		assert.Equal(t, StandardDiscounts, cfg.Pricing.Discounts)
		assert.Equal(t, "0 */15 * * * *", cfg.Scheduler.RefreshRateTable)
		assert.False(t, cfg.DatabaseEnabled())
	})

	t.Run("Custom pricing", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
server:
  port: 8080
pricing:
  plans:
    - name: ByHalfDay
      unit_price: 12
      unit_duration_seconds: 43200
  discounts: []
`))
		require.NoError(t, err)

		assert.Equal(t, []domain.PricingPlan{{Name: "ByHalfDay", UnitPrice: 12, UnitDurationSeconds: 43200}}, cfg.Pricing.Plans)
		assert.Empty(t, cfg.Pricing.Discounts)
	})

	t.Run("Invalid plan", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
pricing:
  plans:
    - name: Broken
      unit_price: 5
      unit_duration_seconds: 0
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unit_duration_seconds must be positive")
	})

	t.Run("Invalid port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  port: 70000\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_USER", "bikes")
	t.Setenv("DB_NAME", "bike_rental")
	t.Setenv("RATE_REFRESH_SCHEDULE", "0 0 * * * *")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.DatabaseEnabled())
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres://bikes:@db.local:5432/bike_rental?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, "0 0 * * * *", cfg.Scheduler.RefreshRateTable)
}

func TestLoad_DatabaseRequiresUser(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")

	_, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database user is required")
}

func TestDefault(t *testing.T) {
	t.Run("Standard pricing", func(t *testing.T) {
		cfg, err := Default()
		require.NoError(t, err)
		assert.Equal(t, StandardPlans, cfg.Pricing.Plans)
		assert.Equal(t, StandardDiscounts, cfg.Pricing.Discounts)
		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	})

	t.Run("Invalid env override", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "99999")

		cfg, err := Default()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
		assert.Nil(t, cfg)
	})

	t.Run("Database env without user", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.local")

		_, err := Default()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database user is required")
	})
}
