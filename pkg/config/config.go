// Package config loads gpadist configuration from TOML, YAML, or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/nagatsuki/gpadist/pkg/parser"
)

// Config holds all configuration options for gpadist.
type Config struct {
	// Named dataset sources: dataset name -> CSV file path
	Datasets map[string]string `koanf:"datasets" toml:"datasets"`

	// Table parsing settings
	Parser ParserConfig `koanf:"parser" toml:"parser"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// ParserConfig controls row-label decomposition.
type ParserConfig struct {
	GradeSuffix string `koanf:"grade_suffix" toml:"grade_suffix"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"` // text, json, markdown
	Color  bool   `koanf:"color" toml:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Datasets: map[string]string{},
		Parser: ParserConfig{
			GradeSuffix: parser.DefaultGradeSuffix,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// ParserOptions converts the parsing settings into parser options.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{GradeSuffix: c.Parser.GradeSuffix}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var p koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p = yaml.Parser()
	case ".json":
		p = json.Parser()
	default:
		p = toml.Parser()
	}

	if err := k.Load(file.Provider(path), p); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"gpadist.toml",
		"gpadist.yaml",
		"gpadist.yml",
		"gpadist.json",
		".gpadist.toml",
		".gpadist.yaml",
		".gpadist.yml",
		".gpadist.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
