package main

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-derived configuration.
type Config struct {
	// Home locates the default config file. Required.
	Home string `env:"HOME,required"`

	// ConfigPath overrides the JSON config file location.
	ConfigPath string `env:"DDIR_CONFIG"`

	// DBPath selects the SQLite store at this path instead of the JSON
	// file store.
	DBPath string `env:"DDIR_DB"`

	// Debug enables debug logging to stderr.
	Debug bool `env:"DDIR_DEBUG"`
}

// ConfigFromEnv parses the configuration from the environment.
func ConfigFromEnv() (*Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &config, nil
}

// ConfigFile returns the JSON config file path, honoring the DDIR_CONFIG
// override.
func (c *Config) ConfigFile() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return filepath.Join(c.Home, ".config", "ddir", "config.json")
}
