package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nicheapis/apisuite/pkg/serializer"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Usage: fmt.Sprintf("Output format (supported values: %s)",
		strings.Join(serializer.SupportedFormats(), ", ")),
	Value: string(serializer.FormatYAML),
}

// writeOut serializes v to the destination selected by the --output and
// --format flags, closing the serializer when it holds a file handle.
func writeOut(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	s := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if c, ok := s.(serializer.Closer); ok {
		defer func() {
			_ = c.Close()
		}()
	}

	return s.Serialize(ctx, v)
}
