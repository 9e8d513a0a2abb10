// Package main is the entry point of the rangeplot command. It renders range
// widgets described in YAML files to SVG, and replays pointer gestures on
// them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/rangeplot/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const envHelp = `
Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  RANGEPLOT_LOG_LEVEL       Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  RANGEPLOT_LOG_FORMAT      Log format: pretty, json (default: pretty)
  RANGEPLOT_WIDTH           Widget width when a file sets none (default: 400)
  RANGEPLOT_TICK_SPACING    Minimum pixels between axis labels (default: 80)
  RANGEPLOT_TOLERANCE       Pixels around an edge that grab it (default: 6)
  RANGEPLOT_WORKERS         Widgets rendered concurrently (default: 4)
  RANGEPLOT_OUTPUT_DIR      Directory of the rendered files (default: .)`

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rangeplot",
		Short:         "Render range selection widgets",
		Long:          `rangeplot draws a line chart or a histogram under a draggable range selection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(replayCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string, opts ...config.Option) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg, nil
}
