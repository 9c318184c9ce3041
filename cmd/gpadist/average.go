package main

import (
	"fmt"

	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/nagatsuki/gpadist/pkg/query"
	"github.com/nagatsuki/gpadist/pkg/stats"
	"github.com/spf13/cobra"
)

var averageCmd = &cobra.Command{
	Use:   "average [file]",
	Short: "Weighted-average GPA for a segment, a major, or everyone",
	Long: `Computes the count-weighted average of the bin midpoints. With --major and
--grade the scope is one segment; with --major alone all grades of that major
are aggregated first; with neither the whole dataset is averaged.

A scope with no students reports no average rather than zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAverage,
}

func init() {
	addDatasetFlag(averageCmd)
	averageCmd.Flags().String("major", "", "Major to average (exact match)")
	averageCmd.Flags().Int("grade", 0, "Grade within the major (0 = ungraded row)")
	rootCmd.AddCommand(averageCmd)
}

func runAverage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ds, err := resolveDataset(cmd, args, cfg)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(cmd, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	major, _ := cmd.Flags().GetString("major")
	grade, _ := cmd.Flags().GetInt("grade")
	gradeSet := cmd.Flags().Changed("grade")

	var scope string
	var counts []int
	var total int

	switch {
	case major != "" && gradeSet:
		seg, ok := query.FindSegment(ds.Segments, major, grade)
		if !ok {
			formatter.Notice("No segment for major %q grade %d", major, grade)
			return nil
		}
		scope = fmt.Sprintf("%s %s", major, formatGrade(grade))
		counts, total = seg.Counts, seg.Total
	case major != "":
		agg := query.AggregateMajor(ds, major)
		scope = major
		counts, total = agg.Counts, agg.Total
	default:
		agg := query.AggregateAll(ds)
		scope = "all"
		counts, total = agg.Counts, agg.Total
	}

	avg, ok := stats.WeightedAverage(counts, ds.Bins)
	if !ok {
		formatter.Notice("No data for %s yet", scope)
		return nil
	}

	table := output.NewTable(
		"Weighted Average",
		[]string{"Scope", "Count", "Average"},
		[][]string{{scope, fmt.Sprintf("%d", total), formatAverage(avg, ok)}},
		nil,
		map[string]any{"scope": scope, "count": total, "average": avg},
	)
	return formatter.OutputTable(table)
}
