// Package deploy implements the suite's provisioning sequence: verify
// required tools on PATH, generate the .env template and log directory
// (both strictly idempotent), launch the suite daemon in the background,
// and probe its health endpoint until it answers 200 or the wait window
// elapses.
//
// The sequence is deliberately linear and fail-fast: the first failed
// step aborts the run and the remaining steps are reported as skipped.
// The aggregated Result drives the CLI's exit code: 0 only when every
// executed step passed.
package deploy
