package main

import (
	"fmt"

	"github.com/nagatsuki/gpadist/internal/loader"
	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/nagatsuki/gpadist/internal/progress"
	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/nagatsuki/gpadist/pkg/query"
	"github.com/nagatsuki/gpadist/pkg/stats"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize every configured dataset",
	Long: `Loads all datasets named in the config file in parallel and reports segment
counts, population totals, and the overall weighted average of each.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(cfg.Datasets) == 0 {
		formatter.Notice("No datasets configured (run `gpadist init` and add some)")
		return nil
	}

	p := parser.NewWithOptions(cfg.ParserOptions())
	tracker := progress.NewTracker("Loading datasets...", len(cfg.Datasets))
	results, errs := loader.LoadAll(cfg.Datasets, p, tracker.Tick)
	tracker.Finish()

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		ds := res.Dataset
		agg := query.AggregateAll(ds)
		avg, ok := stats.WeightedAverage(agg.Counts, ds.Bins)

		rows = append(rows, []string{
			res.Name,
			fmt.Sprintf("%d", len(ds.Bins)),
			fmt.Sprintf("%d", len(ds.Segments)),
			fmt.Sprintf("%d", len(query.Majors(ds))),
			fmt.Sprintf("%d", agg.Total),
			formatAverage(avg, ok),
		})
	}

	if len(rows) > 0 {
		table := output.NewTable(
			"Dataset Summary",
			[]string{"Dataset", "Bins", "Segments", "Majors", "Population", "Weighted Avg"},
			rows,
			[]string{fmt.Sprintf("Datasets: %d", len(rows)), "", "", "", "", ""},
			results,
		)
		if err := formatter.OutputTable(table); err != nil {
			return err
		}
	}

	// Malformed or unreadable source data is a configuration problem, not a
	// normal empty state.
	if errs != nil {
		return fmt.Errorf("failed to load all datasets: %w", errs)
	}
	return nil
}
