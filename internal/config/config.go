package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the overridable settings. The density table is not one of
// them.
type Config struct {
	Source      string `yaml:"source"`
	ResDir      string `yaml:"res_dir"`
	IconPercent int    `yaml:"icon_percent"`
}

func Default() Config {
	return Config{
		Source:      SourceIcon,
		ResDir:      AndroidRes,
		IconPercent: 85,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		def := Default()
		return &def, nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.ResDir == "" {
		return fmt.Errorf("res_dir is required")
	}
	if c.IconPercent < 1 || c.IconPercent > 100 {
		return fmt.Errorf("icon_percent must be between 1 and 100, got %d", c.IconPercent)
	}
	return nil
}
