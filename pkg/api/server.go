package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nicheapis/apisuite/pkg/config"
	"github.com/nicheapis/apisuite/pkg/logging"
	"github.com/nicheapis/apisuite/pkg/server"
)

const (
	name           = "apisuited"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/nicheapis/apisuite/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the suite API server and blocks until shutdown.
// It loads configuration from the environment and the .env file in the
// working directory, configures logging, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	// Bootstrap logging from LOG_LEVEL so config-load failures are
	// reported structured; reconfigured below once config is parsed.
	logging.SetDefaultStructuredLogger(name, version)

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	sc := server.ConfigFrom(cfg)
	sc.Name = name
	sc.Version = version

	s := server.New(server.WithConfig(sc))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
