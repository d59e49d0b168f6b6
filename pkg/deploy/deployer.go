package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nicheapis/apisuite/pkg/config"
	"github.com/nicheapis/apisuite/pkg/defaults"
	apierrors "github.com/nicheapis/apisuite/pkg/errors"
)

// DefaultDaemon is the suite daemon binary the deployer launches and
// requires on PATH.
const DefaultDaemon = "apisuited"

// DefaultHealthURL is the liveness endpoint probed after launch.
const DefaultHealthURL = "http://localhost:8000/health"

// DefaultLogDir is where the daemon's output is captured.
const DefaultLogDir = "logs"

// Deployer runs the provisioning sequence: preflight tool checks,
// idempotent workspace setup, daemon launch, and the liveness probe.
// Steps run in order and the first failure aborts the run; the remaining
// steps are reported as skipped.
type Deployer struct {
	requiredTools []string
	envFile       string
	logDir        string
	daemon        string
	daemonArgs    []string
	healthURL     string
	window        time.Duration
	interval      time.Duration
	settle        time.Duration
	skipLaunch    bool
	client        *http.Client
}

// Option customizes a Deployer.
type Option func(*Deployer)

// WithRequiredTools sets the executables preflight must resolve on PATH.
func WithRequiredTools(tools ...string) Option {
	return func(d *Deployer) {
		if len(tools) > 0 {
			d.requiredTools = tools
		}
	}
}

// WithEnvFile sets the .env file path.
func WithEnvFile(path string) Option {
	return func(d *Deployer) {
		if path != "" {
			d.envFile = path
		}
	}
}

// WithLogDir sets the log directory.
func WithLogDir(dir string) Option {
	return func(d *Deployer) {
		if dir != "" {
			d.logDir = dir
		}
	}
}

// WithDaemon sets the daemon command and arguments to launch.
func WithDaemon(daemon string, args ...string) Option {
	return func(d *Deployer) {
		if daemon != "" {
			d.daemon = daemon
			d.daemonArgs = args
		}
	}
}

// WithHealthURL sets the liveness endpoint to probe.
func WithHealthURL(url string) Option {
	return func(d *Deployer) {
		if url != "" {
			d.healthURL = url
		}
	}
}

// WithProbeWindow sets the probe wait window.
func WithProbeWindow(window time.Duration) Option {
	return func(d *Deployer) {
		if window > 0 {
			d.window = window
		}
	}
}

// WithSkipLaunch skips the daemon launch step, for daemons managed by an
// external supervisor. The probe still runs.
func WithSkipLaunch(skip bool) Option {
	return func(d *Deployer) { d.skipLaunch = skip }
}

// WithHTTPClient overrides the probe HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Deployer) { d.client = client }
}

// New creates a Deployer with defaults suitable for a local deployment.
func New(opts ...Option) *Deployer {
	d := &Deployer{
		requiredTools: []string{DefaultDaemon},
		envFile:       config.DefaultEnvFile,
		logDir:        DefaultLogDir,
		daemon:        DefaultDaemon,
		healthURL:     DefaultHealthURL,
		window:        defaults.ProbeWindow,
		interval:      defaults.ProbeInterval,
		settle:        defaults.LaunchSettleDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the provisioning sequence and returns the aggregated
// result. Step failures are reported in the result, not as an error;
// the error return is reserved for context cancellation.
func (d *Deployer) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		Status:    StepOK,
		StartedAt: time.Now(),
	}
	defer func() {
		res.Duration = time.Since(res.StartedAt)
	}()

	steps := []struct {
		name string
		skip bool
		fn   func(context.Context) (string, error)
	}{
		{name: StepPreflight, fn: d.runPreflight},
		{name: StepEnvFile, fn: d.runEnvFile},
		{name: StepLogDir, fn: d.runLogDir},
		{name: StepLaunch, skip: d.skipLaunch, fn: d.runLaunch},
		{name: StepProbe, fn: d.runProbe},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if step.skip || res.Failed() {
			res.Steps = append(res.Steps, StepResult{
				Name:   step.name,
				Status: StepSkipped,
				Detail: skipReason(step.skip, res.Failed()),
			})
			continue
		}

		start := time.Now()
		detail, err := step.fn(ctx)
		sr := StepResult{
			Name:     step.name,
			Status:   StepOK,
			Detail:   detail,
			Duration: time.Since(start),
		}
		if err != nil {
			sr.Status = StepFailed
			sr.Detail = err.Error()
			res.Status = StepFailed
			slog.Error("deployment step failed", "step", step.name, "error", err)
		} else {
			slog.Info("deployment step completed", "step", step.name, "detail", detail)
		}
		res.Steps = append(res.Steps, sr)
	}

	return res, nil
}

func skipReason(byConfig, afterFailure bool) string {
	if byConfig {
		return "disabled by configuration"
	}
	if afterFailure {
		return "earlier step failed"
	}
	return ""
}

func (d *Deployer) runPreflight(_ context.Context) (string, error) {
	checks := CheckTools(d.requiredTools)
	if missing, ok := FirstMissing(checks); ok {
		return "", apierrors.NewWithContext(apierrors.ErrCodeNotFound,
			fmt.Sprintf("required tool %s", missing.Err),
			map[string]any{"tool": missing.Tool})
	}
	return fmt.Sprintf("%d tool(s) resolved", len(checks)), nil
}

func (d *Deployer) runEnvFile(_ context.Context) (string, error) {
	created, err := config.WriteTemplate(d.envFile)
	if err != nil {
		return "", err
	}
	if !created {
		return fmt.Sprintf("%s already exists, left untouched", d.envFile), nil
	}
	return fmt.Sprintf("%s created from template", d.envFile), nil
}

func (d *Deployer) runLogDir(_ context.Context) (string, error) {
	if err := os.MkdirAll(d.logDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create log directory %q: %w", d.logDir, err)
	}
	return fmt.Sprintf("%s ready", d.logDir), nil
}

func (d *Deployer) runLaunch(ctx context.Context) (string, error) {
	pid, err := Launch(d.daemon, d.daemonArgs, d.logDir)
	if err != nil {
		return "", err
	}

	// Give the daemon a moment to bind before the first probe.
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(d.settle):
	}

	return fmt.Sprintf("%s started (pid %d)", d.daemon, pid), nil
}

func (d *Deployer) runProbe(ctx context.Context) (string, error) {
	p := &Probe{
		URL:      d.healthURL,
		Window:   d.window,
		Interval: d.interval,
		Client:   d.client,
	}
	if err := p.Wait(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s answered 200", d.healthURL), nil
}
