package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default configuration values
const (
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultOutput     = "text"
	DefaultConfigName = "fsmeta.yaml"
)

// Config holds the complete fsmeta configuration
type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	Output        string `yaml:"output"`
	DegradedOwner bool   `yaml:"degraded_owner"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Output:    DefaultOutput,
	}
}

// LoadConfig loads and validates a configuration from the specified file path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
}

func validateConfig(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: expected text or json", cfg.LogFormat)
	}

	if _, ok := renderers[cfg.Output]; !ok {
		return fmt.Errorf("invalid output %q: expected text, json or yaml", cfg.Output)
	}
	return nil
}

// FindConfigFile finds a config file based on the search order:
// 1. Explicit path from -c flag
// 2. <user config dir>/fsmeta.yaml
// 3. ./fsmeta.yaml
//
// An explicit path that does not exist is an error. Otherwise an empty string
// means that the defaults are used.
func FindConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	searchPaths := make([]string, 0, 2)
	if dir, err := os.UserConfigDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(dir, DefaultConfigName))
	}
	searchPaths = append(searchPaths, DefaultConfigName)

	for _, path := range searchPaths {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat config file: %w", err)
		}
	}
	return "", nil
}
