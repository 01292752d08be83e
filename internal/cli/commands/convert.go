package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/capitalone/baseconv"
	"github.com/capitalone/baseconv/internal/cli/config"
	"github.com/capitalone/baseconv/internal/cli/output"
	"github.com/capitalone/baseconv/internal/log"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert an integer literal between bases",
		Long: `Convert a signed integer literal from one base to another.

Both bases must lie between 2 and 36. Digits are 0-9 then A-Z and are matched
case-insensitively; the result is printed in upper case. Values of any length
are converted exactly.

Negative values start with '-', so separate them from the flags with '--'.`,
		Example: `  baseconv convert 101101 --from 2 --to 10
  baseconv convert 2d -f 16 -t 2
  baseconv convert -f 16 -t 10 -- -7FF`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringP("from", "f", config.DefaultFrom, "Source base (2-36)")
	cmd.Flags().StringP("to", "t", config.DefaultTo, "Target base (2-36)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx)

	from, to, err := cfg.Bases()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"input": args[0],
		"from":  from,
		"to":    to,
	}).Debug("converting")

	out, err := baseconv.Convert(args[0], from, to)
	if err != nil {
		return fmt.Errorf("cannot convert %q: %w", args[0], err)
	}

	logger.WithField("output", out).Debug("converted")

	return output.FromContext(ctx, cmd.OutOrStdout()).Render(output.Result{
		Input:  args[0],
		From:   from,
		To:     to,
		Output: out,
	})
}
