package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridsearch"
)

// Config holds the settings of a gridsearch run
type Config struct {
	Boards        []string              `yaml:"boards"`
	Strategies    []gridsearch.Strategy `yaml:"strategies"`
	Color         bool                  `yaml:"color"`
	PrintBoards   bool                  `yaml:"print_boards"`
	Workers       int                   `yaml:"workers"`
	MaxExpansions int                   `yaml:"max_expansions"` // 0 = unlimited
	Log           LogConfig             `yaml:"log"`
	MetricsAddr   string                `yaml:"metrics_addr"` // empty disables /metrics
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Color: true, PrintBoards: true}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{Color: true, PrintBoards: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Strategies) == 0 {
		c.Strategies = gridsearch.Strategies()
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate rejects settings that cannot be run.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must not be negative, got %d", c.MaxExpansions)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
