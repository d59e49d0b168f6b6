package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nicheapis/apisuite/pkg/logging"
)

// Server is the suite HTTP server.
type Server struct {
	config     *Config
	httpServer *http.Server

	// Suite-wide rate limiting windows; nil when disabled.
	minuteLimiter *rate.Limiter
	hourLimiter   *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option customizes a Server.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}

// WithName sets the server identity name.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithVersion sets the reported version.
func WithVersion(version string) Option {
	return func(c *Config) { c.Version = version }
}

// WithHandler mounts additional handlers behind the middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) { c.Handlers = handlers }
}

// New creates a server instance.
func New(opts ...Option) *Server {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{
		config:        cfg,
		minuteLimiter: windowLimiter(cfg.RateLimitPerMinute, time.Minute),
		hourLimiter:   windowLimiter(cfg.RateLimitPerHour, time.Hour),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     logging.NewLogLogger(slog.LevelError),
	}

	return s
}

// windowLimiter builds a token bucket admitting n requests per window,
// with the full window as burst. Returns nil for a disabled window.
func windowLimiter(n int, window time.Duration) *rate.Limiter {
	if n <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(n)/window.Seconds()), n)
}

// setReady marks the server as ready to serve traffic.
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Once listening it notifies systemd, when present, that
// the service is ready.
func (s *Server) Start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("starting server", "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// No-op outside systemd units (returns false, nil).
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Warn("failed to notify systemd", "error", err)
	}

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		slog.Warn("failed to notify systemd", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with signal-driven graceful shutdown and blocks
// until it stops.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version),
		slog.String("address", s.httpServer.Addr),
		slog.Int("rateLimitPerMinute", s.config.RateLimitPerMinute),
		slog.Int("rateLimitPerHour", s.config.RateLimitPerHour),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
