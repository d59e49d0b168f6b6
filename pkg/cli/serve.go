package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the suite API server in the foreground",
		Description: `Start the HTTP server and block until SIGINT/SIGTERM.
Equivalent to running the apisuited binary directly; configuration is read
from the environment and the .env file in the working directory.`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return api.Serve()
		},
	}
}
