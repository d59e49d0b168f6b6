package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Deployment timing for the provisioning sequence.
const (
	// ProbeWindow is the default wait window for the liveness probe.
	// The deploy run fails if the daemon does not answer 200 within it.
	ProbeWindow = 30 * time.Second

	// ProbeInterval is the delay between liveness probe attempts.
	ProbeInterval = 500 * time.Millisecond

	// ProbeRequestTimeout bounds a single probe HTTP request.
	ProbeRequestTimeout = 2 * time.Second

	// LaunchSettleDelay is how long the deployer waits after starting the
	// daemon before the first probe attempt.
	LaunchSettleDelay = 1 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second
)
