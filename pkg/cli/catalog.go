package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/catalog"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "List the services the suite exposes",
		Description: `Print the service catalog: every API the suite hosts, with its
route prefix, category, and whether it is marketed on the marketplace.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOut(ctx, cmd, catalog.Services())
		},
	}
}

func listingCmd() *cli.Command {
	return &cli.Command{
		Name:                  "listing",
		EnableShellCompletion: true,
		Usage:                 "Generate a marketplace listing for a marketed API",
		ArgsUsage:             "SERVICE_ID",
		Description: fmt.Sprintf(`Generate the marketplace listing (pricing tiers and usage example)
for one of the marketed APIs: %s.`, strings.Join(catalog.MarketedIDs(), ", ")),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("missing SERVICE_ID argument (one of: %s)",
					strings.Join(catalog.MarketedIDs(), ", "))
			}

			listing, err := catalog.GenerateListing(id)
			if err != nil {
				return err
			}
			return writeOut(ctx, cmd, listing)
		},
	}
}
