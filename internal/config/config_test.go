package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PROD_ORIGINS", "HTTP_ADDR", "LOG_LEVEL", "TAX_RATE", "CHECKOUT_DELAY", "SESSION_TTL"} {
		// Setenv registers the restore, Unsetenv leaves the variable unset.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "0.06", cfg.TaxRate.String())
	assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("CHECKOUT_DELAY", "0s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_TTL", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.ProdOrigins)
	assert.Equal(t, "0.18", cfg.TaxRate.String())
	assert.Equal(t, time.Duration(0), cfg.CheckoutDelay)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, time.Duration(0), cfg.SessionTTL, "zero disables expiry")
}

func TestLoadInvalid(t *testing.T) {
	t.Run("Tax rate not a number", func(t *testing.T) {
		t.Setenv("TAX_RATE", "six percent")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Tax rate out of range", func(t *testing.T) {
		t.Setenv("TAX_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Production without origins", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("PROD_ORIGINS", "")
		require.NoError(t, os.Unsetenv("PROD_ORIGINS"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Session TTL too short", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "1ns")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Session TTL negative", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "-5m")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Delay not a duration", func(t *testing.T) {
		t.Setenv("CHECKOUT_DELAY", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
}
