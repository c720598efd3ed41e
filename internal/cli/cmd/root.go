// Package cmd provides Cobra CLI commands for tiler.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFlag string
	rootCmd    = &cobra.Command{
		Use:   "tiler",
		Short: "A binary space partitioning tiler for stacking window managers",
		Long: `Tiler - binary space partitioning on top of a stacking window manager.

Every virtual desktop keeps a tree of windows. New windows split the
focused one, closed windows give their space back to their sibling and
dragging a border moves the divider between neighbours.

The engine runs against a simulated window host: describe windows and
user actions in a TOML scenario and 'tiler run' prints the resulting
layout, or explore the engine interactively with 'tiler preview'.
Layouts can be saved to and restored from a local database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFlag, cmd.Flags())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, cli.FlagConfig, "", "config file (default $XDG_CONFIG_HOME/tiler/config.toml)")
	flags.String(cli.FlagLogLevel, "", "log level: trace, debug, info, warn, error")
	flags.String(cli.FlagLogFormat, "", "log format: console, json")
	flags.String(cli.FlagDB, "", "layout database (default $XDG_DATA_HOME/tiler/tiler.sqlite)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
