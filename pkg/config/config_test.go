package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Parser.GradeSuffix != "回生" {
		t.Errorf("Parser.GradeSuffix = %q, want 回生", cfg.Parser.GradeSuffix)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true by default")
	}
	if cfg.Datasets == nil {
		t.Error("Datasets should be an empty map, not nil")
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gpadist.toml")

	content := `
[datasets]
undergrad = "data/undergrad.csv"
graduate = "data/graduate.csv"

[parser]
grade_suffix = "年"

[output]
format = "json"
color = false
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Datasets["undergrad"] != "data/undergrad.csv" {
		t.Errorf("Datasets[undergrad] = %q", cfg.Datasets["undergrad"])
	}
	if len(cfg.Datasets) != 2 {
		t.Errorf("len(Datasets) = %d, want 2", len(cfg.Datasets))
	}
	if cfg.Parser.GradeSuffix != "年" {
		t.Errorf("Parser.GradeSuffix = %q, want 年", cfg.Parser.GradeSuffix)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Error("Output.Color should be false")
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gpadist.yaml")

	content := `
datasets:
  undergrad: data/undergrad.csv
output:
  format: markdown
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Datasets["undergrad"] != "data/undergrad.csv" {
		t.Errorf("Datasets[undergrad] = %q", cfg.Datasets["undergrad"])
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %q, want markdown", cfg.Output.Format)
	}
	if cfg.Parser.GradeSuffix != "回生" {
		t.Errorf("unset Parser.GradeSuffix should keep default, got %q", cfg.Parser.GradeSuffix)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParserOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Parser.GradeSuffix = "年"
	if opts := cfg.ParserOptions(); opts.GradeSuffix != "年" {
		t.Errorf("ParserOptions().GradeSuffix = %q, want 年", opts.GradeSuffix)
	}
}
