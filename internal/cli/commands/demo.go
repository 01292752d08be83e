package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/capitalone/baseconv"
	"github.com/capitalone/baseconv/internal/cli/output"
	"github.com/capitalone/baseconv/internal/log"
)

// Sample is a conversion shown by the demo command.
type Sample struct {
	Input    string
	From, To int
}

// Samples are the conversions printed by the demo command.
var Samples = []Sample{
	{"101101", 2, 10},
	{"45", 10, 16},
	{"2D", 16, 2},
	{"-7FF", 16, 10},
}

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample conversions",
		Long:  `Convert a fixed set of sample literals and print the results.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.FromContext(cmd.Context())

			results := make([]output.Result, 0, len(Samples))
			for _, s := range Samples {
				out, err := baseconv.Convert(s.Input, s.From, s.To)
				if err != nil {
					return fmt.Errorf("sample %s (%d): %w", s.Input, s.From, err)
				}
				logger.Debugf("%s (%d) -> %s (%d)", s.Input, s.From, out, s.To)
				results = append(results, output.Result{Input: s.Input, From: s.From, To: s.To, Output: out})
			}

			return output.FromContext(cmd.Context(), cmd.OutOrStdout()).RenderAll(results)
		},
	}
}
