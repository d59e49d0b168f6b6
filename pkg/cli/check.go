package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/deploy"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify required tools are available on PATH",
		Description: `Resolve each required executable on PATH and report the result.
Defaults to the suite daemon binary when no --tool is given.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "tool",
				Usage: "Executable to verify on PATH (can be repeated)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tools := cmd.StringSlice("tool")
			if len(tools) == 0 {
				tools = []string{deploy.DefaultDaemon}
			}

			checks := deploy.CheckTools(tools)
			if err := writeOut(ctx, cmd, checks); err != nil {
				return err
			}

			if missing, ok := deploy.FirstMissing(checks); ok {
				return fmt.Errorf("required tool %s", missing.Err)
			}
			return nil
		},
	}
}
