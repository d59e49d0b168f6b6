package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/defaults"
	"github.com/nicheapis/apisuite/pkg/deploy"
)

func probeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "probe",
		EnableShellCompletion: true,
		Usage:                 "Probe the suite daemon's health endpoint",
		Description: `Poll the health endpoint until it answers 200 or the wait window
elapses. Useful for verifying a running deployment without re-provisioning.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "Health endpoint URL",
				Value: deploy.DefaultHealthURL,
			},
			&cli.DurationFlag{
				Name:  "window",
				Usage: "How long to keep retrying",
				Value: defaults.ProbeWindow,
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Delay between attempts",
				Value: defaults.ProbeInterval,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := deploy.NewProbe(cmd.String("url"))
			p.Window = cmd.Duration("window")
			p.Interval = cmd.Duration("interval")

			start := time.Now()
			if err := p.Wait(ctx); err != nil {
				return err
			}

			fmt.Printf("%s answered 200 after %s\n",
				cmd.String("url"), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
