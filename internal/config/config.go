package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const PROD_STRING = "prod"

// MinSessionTTL is the shortest idle timeout accepted for booking sessions.
// A SESSION_TTL of zero disables expiry.
const MinSessionTTL = time.Second

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction  bool
	ProdOrigins   []string
	HTTPAddr      string
	LogLevel      string
	TaxRate       decimal.Decimal
	CheckoutDelay time.Duration
	SessionTTL    time.Duration
}

// environment mirrors the variables read by Load.
type environment struct {
	AppEnv        string          `env:"APP_ENV" envDefault:"dev"`
	ProdOrigins   []string        `env:"PROD_ORIGINS" envSeparator:","`
	HTTPAddr      string          `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel      string          `env:"LOG_LEVEL" envDefault:"info"`
	TaxRate       decimal.Decimal `env:"TAX_RATE" envDefault:"0.06"`
	CheckoutDelay time.Duration   `env:"CHECKOUT_DELAY" envDefault:"2s"`
	SessionTTL    time.Duration   `env:"SESSION_TTL" envDefault:"30m"`
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Tax rate is a fraction, e.g. 0.06 for 6%
	if e.TaxRate.IsNegative() || e.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid TAX_RATE %s: must be between 0 and 1", e.TaxRate)
	}

	isProduction := e.AppEnv == PROD_STRING
	if isProduction && len(e.ProdOrigins) == 0 {
		return nil, fmt.Errorf("PROD_ORIGINS is required when APP_ENV=%s", PROD_STRING)
	}

	if e.CheckoutDelay < 0 {
		return nil, fmt.Errorf("invalid CHECKOUT_DELAY %s: must not be negative", e.CheckoutDelay)
	}

	if e.SessionTTL != 0 && e.SessionTTL < MinSessionTTL {
		return nil, fmt.Errorf("invalid SESSION_TTL %s: must be 0 or at least %s", e.SessionTTL, MinSessionTTL)
	}

	return &Config{
		IsProduction:  isProduction,
		ProdOrigins:   e.ProdOrigins,
		HTTPAddr:      e.HTTPAddr,
		LogLevel:      e.LogLevel,
		TaxRate:       e.TaxRate,
		CheckoutDelay: e.CheckoutDelay,
		SessionTTL:    e.SessionTTL,
	}, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
