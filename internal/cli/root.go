package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seisgrad/config"
	"github.com/katalvlaran/seisgrad/internal/ctxlog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // YAML run description; empty means config.Defaults()
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the seisgrad CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "seisgrad",
		Short: "seisgrad - imaging conditions and linearized sources",
		Long: `Build and inspect the imaging-condition (FWI/RTM gradient) and
linearized-source equations for a grid and model described in YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), newLogger(cmd, opts)))

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML run description")

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewGradientCommand(opts))
	cmd.AddCommand(NewSourceCommand(opts))
	cmd.AddCommand(NewRoundTripCommand(opts))

	return cmd
}

// newLogger writes diagnostics to stderr so JSON output stays parseable.
func newLogger(cmd *cobra.Command, opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	ho := &slog.HandlerOptions{Level: level}
	if opts.Format == "json" {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), ho))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), ho))
}

// loadConfig reads --config or falls back to the defaults.
func loadConfig(opts *RootOptions) (config.Config, error) {
	if opts.Config == "" {
		return config.Defaults(), nil
	}

	return config.Load(opts.Config)
}
