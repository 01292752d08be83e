// Package cli provides the command-line interface for baseconv.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/capitalone/baseconv/internal/cli/commands"
	"github.com/capitalone/baseconv/internal/cli/config"
	"github.com/capitalone/baseconv/internal/cli/output"
	"github.com/capitalone/baseconv/internal/log"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "baseconv",
		Short: "Convert integers between bases 2 to 36",
		Long: `baseconv converts signed integer literals of any length between
numeric bases 2 through 36.

Defaults for the source and target base and the output format can be set in
baseconv.yaml or through BASECONV_FROM, BASECONV_TO and BASECONV_OUTPUT.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			mode, err := output.ParseMode(cfg.Output)
			if err != nil {
				return err
			}

			logger := log.InitLogs(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.WithField("file", cfg.File).Debug("using config file")
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = log.WithLogger(ctx, logger)
			ctx = output.WithRenderer(ctx, output.NewRenderer(cmd.OutOrStdout(), mode))
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./baseconv.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|table|json|yaml)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(output.Modes))
		for i, m := range output.Modes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewDemoCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
