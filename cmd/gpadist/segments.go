package main

import (
	"fmt"

	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/nagatsuki/gpadist/pkg/parser"
	"github.com/nagatsuki/gpadist/pkg/query"
	"github.com/nagatsuki/gpadist/pkg/stats"
	"github.com/spf13/cobra"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments [file]",
	Short: "List the segments of a dataset with totals and averages",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSegments,
}

func init() {
	addDatasetFlag(segmentsCmd)
	segmentsCmd.Flags().Bool("export", false, "Re-serialize the dataset to delimited text instead of a table")
	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
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

	if export, _ := cmd.Flags().GetBool("export"); export {
		p := parser.NewWithOptions(cfg.ParserOptions())
		fmt.Fprint(formatter.Writer(), p.Format(ds))
		return nil
	}

	if ds.Empty() {
		formatter.Notice("Dataset is empty")
		return nil
	}

	rows := make([][]string, 0, len(ds.Segments))
	for _, seg := range ds.Segments {
		avg, ok := stats.WeightedAverage(seg.Counts, ds.Bins)
		rows = append(rows, []string{
			seg.Major,
			formatGrade(seg.Grade),
			fmt.Sprintf("%d", seg.Total),
			formatAverage(avg, ok),
		})
	}

	all := query.AggregateAll(ds)
	table := output.NewTable(
		"Segments",
		[]string{"Major", "Grade", "Count", "Weighted Avg"},
		rows,
		[]string{
			fmt.Sprintf("Segments: %d", len(ds.Segments)),
			fmt.Sprintf("Majors: %d", len(query.Majors(ds))),
			fmt.Sprintf("Population: %d", all.Total),
			"",
		},
		ds,
	)
	return formatter.OutputTable(table)
}
