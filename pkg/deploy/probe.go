package deploy

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nicheapis/apisuite/pkg/defaults"
	apierrors "github.com/nicheapis/apisuite/pkg/errors"
)

// Probe checks the daemon's health endpoint, polling until it answers
// 200 or the wait window elapses.
type Probe struct {
	// URL is the health endpoint to probe.
	URL string

	// Window bounds the total wait time.
	Window time.Duration

	// Interval is the delay between attempts.
	Interval time.Duration

	// Client overrides the HTTP client; a default with a short
	// per-request timeout is used when nil.
	Client *http.Client
}

// NewProbe creates a Probe with default timing for the given URL.
func NewProbe(url string) *Probe {
	return &Probe{
		URL:      url,
		Window:   defaults.ProbeWindow,
		Interval: defaults.ProbeInterval,
	}
}

func (p *Probe) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return &http.Client{Timeout: defaults.ProbeRequestTimeout}
}

// Wait blocks until the endpoint answers 200 or the window elapses.
// Returns nil on the first 200; a window expiry reports the last attempt's
// error. Caller cancellation aborts early with ctx.Err().
func (p *Probe) Wait(ctx context.Context) error {
	window := p.Window
	if window <= 0 {
		window = defaults.ProbeWindow
	}
	interval := p.Interval
	if interval <= 0 {
		interval = defaults.ProbeInterval
	}

	attemptCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	var lastErr error
	for {
		lastErr = p.attempt(attemptCtx)
		if lastErr == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-attemptCtx.Done():
			// Caller cancellation also closes attemptCtx; it wins over
			// the window expiry report.
			if err := ctx.Err(); err != nil {
				return err
			}
			return apierrors.WrapWithContext(apierrors.ErrCodeTimeout,
				fmt.Sprintf("health probe failed within %s", window), lastErr,
				map[string]any{"url": p.URL, "window": window.String()})
		case <-time.After(interval):
		}
	}
}

// attempt issues a single GET against the health endpoint. Only a 200
// counts as success.
func (p *Probe) attempt(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}

	resp, err := p.client().Do(req)
	if err != nil {
		return fmt.Errorf("probe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %d", resp.StatusCode)
	}
	return nil
}
