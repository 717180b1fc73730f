// Package commands implements the statvis subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis/internal/config"
	"github.com/vdobler/statvis/internal/report"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
	flagFormat  = "format"
)

// globals are the settings shared by all subcommands, resolved before
// any of them runs.
type globals struct {
	configPath string
	verbose    bool
	quiet      bool
	format     string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the statvis command with all subcommands.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "statvis",
		Short: "Statistics and range dividers for small chart widgets",
		Long: `Statvis summarises numeric samples and draws them as small widgets.

Input files hold numbers separated by whitespace or commas; "-" reads stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.configPath, flagConfig, "", "config file (default .statvis.yaml in . or $HOME)")
	flags.BoolVarP(&g.verbose, flagVerbose, "v", false, "verbose output")
	flags.BoolVarP(&g.quiet, flagQuiet, "q", false, "suppress output")
	flags.StringVarP(&g.format, flagFormat, "f", config.DefaultOutputFormat, "output format: table, yaml or json")

	rootCmd.AddCommand(
		newSummaryCommand(g),
		newHistogramCommand(g),
		newAggregateCommand(g),
		newDivideCommand(g),
		newRenderCommand(g),
		newVersionCommand(),
	)

	return rootCmd
}

// load reads the configuration and sets up the logger.
func (g *globals) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagFormat) {
		cfg.Output.Format = g.format
	}

	level := new(slog.LevelVar)

	err = level.UnmarshalText([]byte(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	switch {
	case g.quiet:
		level.Set(slog.LevelError)
	case g.verbose:
		level.Set(slog.LevelDebug)
	}

	g.cfg = cfg
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	g.cfg.Widget.Logger = g.logger

	return nil
}

// write prints result in the configured format.
func (g *globals) write(out io.Writer, result report.Tabular) error {
	return report.Write(out, g.cfg.Output.Format, result)
}
