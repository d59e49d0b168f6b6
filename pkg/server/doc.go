// Package server implements the suite's HTTP surface: the default route
// with the suite listing, the service catalog endpoints, and the system
// endpoints (/health, /ready, /metrics) the deployer and orchestrators
// probe.
//
// The middleware chain applied to application endpoints is, outermost
// first: Prometheus metrics, request ID propagation, panic recovery,
// dual-window rate limiting (per-minute and per-hour), and debug request
// logging. System endpoints bypass the chain so probes are never rate
// limited.
//
// Rate limiting derives from the RATE_LIMIT_PER_MINUTE and
// RATE_LIMIT_PER_HOUR configuration keys; a request must be admitted by
// both windows and a zero value disables the corresponding window.
//
// Lifecycle: New builds the server from functional options, Run blocks
// with SIGINT/SIGTERM graceful shutdown, and systemd (when supervising
// the process) is notified of readiness and shutdown via sd_notify.
package server
