package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/nagatsuki/gpadist/pkg/config"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gpadist configuration file",
	Long: `Creates a new gpadist.toml configuration file in the current directory
with sensible defaults. Use --output-file to specify a different location.

Examples:
  gpadist init                          # Creates gpadist.toml here
  gpadist init --output-file cfg.toml   # Creates config elsewhere
  gpadist init --force                  # Overwrite an existing file`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("output-file", "gpadist.toml", "Config file path to create")
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output-file")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("config file %q already exists (use --force to overwrite)", outputPath)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	content, err := generateDefaultConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	color.Green("Created %s", outputPath)
	fmt.Println("Add dataset paths under [datasets] to get started.")
	return nil
}

func generateDefaultConfig() (string, error) {
	cfg := config.DefaultConfig()

	content, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	var buf strings.Builder
	buf.WriteString("# gpadist configuration\n")
	buf.WriteString("# Name dataset CSV files under [datasets], e.g.:\n")
	buf.WriteString("#   undergrad = \"data/undergrad.csv\"\n\n")
	buf.Write(content)

	return buf.String(), nil
}
