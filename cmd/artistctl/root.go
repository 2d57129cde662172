package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"artist-dashboard/internal/config"
	"artist-dashboard/internal/observability"
	"artist-dashboard/internal/report"
	"artist-dashboard/internal/services"
)

const generateTimeout = 30 * time.Second

// Global flag values.
var (
	verbose      bool
	quiet        bool
	noColor      bool
	seed         uint64
	outputFormat = report.FormatTable
)

var rootCmd = &cobra.Command{
	Use:   "artistctl",
	Short: "Inspect the synthetic artist metrics catalog",
	Long: `artistctl generates the same synthetic artist catalog as the dashboard
server and prints it: lifetime metrics, monthly streams and revenue for 2024,
EU5 country revenue, performance score rankings and per-artist insights.
Use --seed to reproduce a catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := observability.VerbosityLevel(verbose, quiet)
		slog.SetDefault(observability.NewLoggerTo(cmd.ErrOrStderr(), config.LoggerConfig{Level: level, Format: "text"}))

		if noColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for the generated series (0 derives one from the clock)")
	rootCmd.PersistentFlags().VarP(&outputFormat, "output", "o", "output format: table, json or yaml")

	rootCmd.AddCommand(artistsCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadMetrics builds the catalog for the current --seed.
func loadMetrics(ctx context.Context) (*services.Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	generator := services.NewGenerator(seed, services.WithLogger(slog.Default()))
	metrics := services.NewMetrics(generator)
	if err := metrics.Load(ctx); err != nil {
		return nil, err
	}
	slog.Debug("catalog ready", "seed", generator.Seed())
	return metrics, nil
}

// emit encodes v for json/yaml output, or hands off to table for the
// default format.
func emit(cmd *cobra.Command, v any, table func() *report.Table) error {
	if outputFormat == report.FormatTable {
		return table().Render(cmd.OutOrStdout())
	}
	return report.Encode(cmd.OutOrStdout(), outputFormat, v)
}
