package main

import (
	"fmt"
	"strconv"

	"github.com/nagatsuki/gpadist/internal/loader"
	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/nagatsuki/gpadist/pkg/config"
	"github.com/nagatsuki/gpadist/pkg/models"
	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/spf13/cobra"
)

// loadConfig loads the --config file when given, otherwise searches the
// standard locations.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", cfgFile, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

// newFormatter builds a formatter from the persistent flags, falling back to
// the configured output settings.
func newFormatter(cmd *cobra.Command, cfg *config.Config) (*output.Formatter, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}
	outFile, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return output.NewFormatter(output.ParseFormat(format), outFile, cfg.Output.Color && !noColor)
}

// resolveDataset loads the dataset named by --dataset (from the config's
// sources) or the positional file argument.
func resolveDataset(cmd *cobra.Command, args []string, cfg *config.Config) (*models.DistributionDataset, error) {
	p := parser.NewWithOptions(cfg.ParserOptions())

	if name, _ := cmd.Flags().GetString("dataset"); name != "" {
		path, ok := cfg.Datasets[name]
		if !ok {
			return nil, fmt.Errorf("dataset %q is not configured", name)
		}
		return loader.Load(path, p)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a dataset file argument or --dataset is required")
	}
	return loader.Load(args[0], p)
}

// addDatasetFlag registers the --dataset flag shared by the query commands.
func addDatasetFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("dataset", "d", "", "Configured dataset name instead of a file argument")
}

// formatAverage renders a weighted average, showing "-" for "no data" so an
// empty segment is never mistaken for an average of zero.
func formatAverage(avg float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 4, 64)
}

// formatGrade renders a grade, showing "-" for the ungraded sentinel.
func formatGrade(grade int) string {
	if grade == 0 {
		return "-"
	}
	return strconv.Itoa(grade)
}
