// Package api provides the HTTP API layer for the Niche Business APIs Suite.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// loading configuration and wiring up logging before delegating lifecycle
// management. The served endpoints themselves (index, catalog, listings,
// health, readiness, metrics) live in pkg/server.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/nicheapis/apisuite/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Configuration
//
// Configuration is read from process environment variables, with a .env
// file in the working directory as fallback (generated by apisuitectl
// deploy). Relevant keys:
//
//	PORT                   HTTP server port (default: 8000)
//	LOG_LEVEL              Logging level (debug, info, warn, error)
//	RATE_LIMIT_PER_MINUTE  Per-minute request budget (default: 60)
//	RATE_LIMIT_PER_HOUR    Per-hour request budget (default: 1000)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nicheapis/apisuite/pkg/api.version=1.0.0'"
package api
