package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/config"
	"github.com/nicheapis/apisuite/pkg/defaults"
	"github.com/nicheapis/apisuite/pkg/deploy"
)

var errDeploymentFailed = errors.New("deployment failed")

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Provision and start the suite daemon",
		Description: `Run the full provisioning sequence:
  1. Verify required tools are on PATH
  2. Generate the .env configuration template (never overwrites an existing file)
  3. Create the log directory
  4. Start the suite daemon in the background
  5. Probe the health endpoint until it answers 200

The sequence is fail-fast: the first failed step aborts the run and the
remaining steps are reported as skipped. Exit code is 0 only when every
executed step passed.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "tool",
				Usage: "Required executable to verify on PATH (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path of the .env file to generate",
				Value: config.DefaultEnvFile,
			},
			&cli.StringFlag{
				Name:  "log-dir",
				Usage: "Directory for daemon log output",
				Value: deploy.DefaultLogDir,
			},
			&cli.StringFlag{
				Name:  "daemon",
				Usage: "Daemon command to launch",
				Value: deploy.DefaultDaemon,
			},
			&cli.StringFlag{
				Name:  "health-url",
				Usage: "Health endpoint to probe after launch",
				Value: deploy.DefaultHealthURL,
			},
			&cli.DurationFlag{
				Name:  "probe-window",
				Usage: "How long to wait for the health endpoint to come up",
				Value: defaults.ProbeWindow,
			},
			&cli.BoolFlag{
				Name:  "skip-launch",
				Usage: "Skip the daemon launch step (daemon managed externally)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := deploy.New(
				deploy.WithRequiredTools(cmd.StringSlice("tool")...),
				deploy.WithEnvFile(cmd.String("env-file")),
				deploy.WithLogDir(cmd.String("log-dir")),
				deploy.WithDaemon(cmd.String("daemon")),
				deploy.WithHealthURL(cmd.String("health-url")),
				deploy.WithProbeWindow(cmd.Duration("probe-window")),
				deploy.WithSkipLaunch(cmd.Bool("skip-launch")),
			)

			res, err := d.Run(ctx)
			if err != nil {
				return fmt.Errorf("deployment aborted: %w", err)
			}

			if cmd.IsSet("output") || cmd.IsSet("format") {
				if err := writeOut(ctx, cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprint(os.Stdout, res.Summary())
			}

			if res.Failed() {
				return errDeploymentFailed
			}
			return nil
		},
	}
}
