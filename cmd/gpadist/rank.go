package main

import (
	"fmt"
	"math"

	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/nagatsuki/gpadist/pkg/query"
	"github.com/nagatsuki/gpadist/pkg/stats"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [file]",
	Short: "Estimate a GPA's rank and percentile within a segment",
	Long: `Estimates the 1-indexed rank (1 = highest GPA) of an individual inside the
chosen major/grade segment, interpolating linearly inside the containing bin.
Values outside the dataset's range are clamped to it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	addDatasetFlag(rankCmd)
	rankCmd.Flags().String("major", "", "Major of the segment (exact match)")
	rankCmd.Flags().Int("grade", 0, "Grade within the major (0 = ungraded row)")
	rankCmd.Flags().Float64("value", 0, "GPA value to rank")
	rankCmd.MarkFlagRequired("major")
	rankCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
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
	value, _ := cmd.Flags().GetFloat64("value")

	seg, ok := query.FindSegment(ds.Segments, major, grade)
	if !ok {
		formatter.Notice("No segment for major %q grade %d", major, grade)
		return nil
	}

	info := stats.ComputeRankInfo(seg, ds.Bins, value)
	if !info.Valid {
		formatter.Notice("No data for major %q grade %d yet", major, grade)
		return nil
	}

	table := output.NewTable(
		"Rank Estimate",
		[]string{"Segment", "Count", "Value", "Rank", "Percentile"},
		[][]string{{
			fmt.Sprintf("%s %s", major, formatGrade(grade)),
			fmt.Sprintf("%d", seg.Total),
			fmt.Sprintf("%g", value),
			fmt.Sprintf("%.1f", info.Rank),
			fmt.Sprintf("%.1f%%", math.Min(info.Percentile, 100)),
		}},
		nil,
		map[string]any{"segment": seg, "value": value, "rank": info},
	)
	return formatter.OutputTable(table)
}
