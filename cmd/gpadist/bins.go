package main

import (
	"fmt"

	"github.com/nagatsuki/gpadist/internal/output"
	"github.com/spf13/cobra"
)

var binsCmd = &cobra.Command{
	Use:   "bins [file]",
	Short: "Show the parsed bin structure of a dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBins,
}

func init() {
	addDatasetFlag(binsCmd)
	rootCmd.AddCommand(binsCmd)
}

func runBins(cmd *cobra.Command, args []string) error {
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

	if ds.Empty() {
		formatter.Notice("Dataset is empty")
		return nil
	}

	rows := make([][]string, 0, len(ds.Bins))
	for _, bin := range ds.Bins {
		rows = append(rows, []string{
			bin.Label,
			fmt.Sprintf("%g", bin.Min),
			fmt.Sprintf("%g", bin.Max),
			fmt.Sprintf("%g", bin.Midpoint()),
		})
	}

	table := output.NewTable(
		"Bins",
		[]string{"Label", "Min", "Max", "Midpoint"},
		rows,
		[]string{fmt.Sprintf("Bins: %d", len(ds.Bins)), "", "", ""},
		ds.Bins,
	)
	return formatter.OutputTable(table)
}
