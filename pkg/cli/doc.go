// Package cli implements the command-line interface for the Niche Business
// APIs Suite operations tool.
//
// # Commands
//
// deploy - Provision and start the suite daemon:
//
//	apisuitectl deploy [--env-file .env] [--log-dir logs] [--skip-launch]
//
// Runs the full provisioning sequence: tool preflight, .env template
// generation, log directory creation, background daemon launch, and the
// health probe. The run is fail-fast and the exit code reflects the
// aggregated result.
//
// check - Verify required tools:
//
//	apisuitectl check [--tool NAME ...]
//
// probe - Poll the daemon's health endpoint:
//
//	apisuitectl probe [--url URL] [--window 30s]
//
// serve - Run the API server in the foreground:
//
//	apisuitectl serve
//
// catalog / listing - Inspect the service catalog and marketplace listings:
//
//	apisuitectl catalog --format table
//	apisuitectl listing email-validation
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Exit Codes
//
//	0  Success
//	1  Any command error, including a failed deployment step
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nicheapis/apisuite/pkg/cli.version=1.0.0'"
package cli
