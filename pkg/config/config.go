// Package config manages suite runtime configuration. Settings follow
// 12-factor principles: values come from process environment variables,
// optionally seeded from a .env file. The package also owns the .env
// template that the deployer generates on first run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the .env file path used when none is specified.
const DefaultEnvFile = ".env"

// Config holds all suite configuration. All fields are populated from
// environment variables; the first eight correspond to the documented
// .env template keys.
type Config struct {
	// Suite credentials and integrations
	APIKey               string `env:"API_KEY"`
	Debug                bool   `env:"DEBUG" envDefault:"false"`
	DatabaseURL          string `env:"DATABASE_URL"`
	StripeSecretKey      string `env:"STRIPE_SECRET_KEY"`
	StripePublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`
	SentryDSN            string `env:"SENTRY_DSN"`

	// Rate limiting windows. Zero disables the corresponding window.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RateLimitPerHour   int `env:"RATE_LIMIT_PER_HOUR" envDefault:"1000"`

	// Server tuning (not part of the .env template)
	Port            int           `env:"PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the .env file at path (if it exists) into the process
// environment and parses the environment into a Config. Values already
// present in the environment take precedence over the file. A missing
// file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file %q: %w", path, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Parse reads configuration from the process environment only, without
// consulting a .env file.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
