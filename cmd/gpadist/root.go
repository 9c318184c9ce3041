package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gpadist",
	Short: "Grade-distribution analytics CLI",
	Long: `Gpadist answers two questions over binned grade-distribution tables:
where does an individual's GPA rank inside a major/grade segment, and what is
the weighted-average GPA for a segment, a major, or the whole population.

Input is comma-delimited text: a header row of range labels ("3.0-3.5")
followed by one row per segment ("CS 1回生,4,12,...").`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: text, json, markdown")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
