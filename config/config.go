// Package config provides YAML configuration loading for go-endf tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the go-endf command-line tools.
type Config struct {
	// DataDir is the directory containing the decay-data files.
	DataDir string `yaml:"data_dir"`
	// LogLevel is the minimum enabled log level: "debug", "info", "warn" or
	// "error".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  ".",
		LogLevel: "info",
	}
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// LoadFromFile reads a YAML config file and merges it over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	config := DefaultConfig()
	config.Merge(&fileConfig)

	return config, nil
}
