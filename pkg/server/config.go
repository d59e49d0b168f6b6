package server

import (
	"net/http"
	"time"

	"github.com/nicheapis/apisuite/pkg/config"
	"github.com/nicheapis/apisuite/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional handlers to mount behind the middleware chain,
	// keyed by route pattern.
	Handlers map[string]http.HandlerFunc

	// Listener configuration
	Address string
	Port    int

	// Rate limiting windows; zero disables a window.
	RateLimitPerMinute int
	RateLimitPerHour   int

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig returns a Config with sensible defaults. Use this when
// customizing the config programmatically.
func NewConfig() *Config {
	return &Config{
		Name:               "server",
		Version:            "undefined",
		Address:            "",
		Port:               8000,
		RateLimitPerMinute: 60,
		RateLimitPerHour:   1000,
		ReadTimeout:        defaults.ServerReadTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}
}

// ConfigFrom maps suite runtime configuration onto a server Config.
func ConfigFrom(sc *config.Config) *Config {
	cfg := NewConfig()
	if sc == nil {
		return cfg
	}
	cfg.Port = sc.Port
	cfg.RateLimitPerMinute = sc.RateLimitPerMinute
	cfg.RateLimitPerHour = sc.RateLimitPerHour
	if sc.ShutdownTimeout > 0 {
		cfg.ShutdownTimeout = sc.ShutdownTimeout
	}
	return cfg
}
