// Package config reads the optional htmlimg.yaml configuration for the
// image loader and the helper tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Filename is the name of the optional configuration file.
const Filename = "htmlimg.yaml"

// Config represents the optional htmlimg.yaml configuration.
type Config struct {
	// Timeout for a single HTTP fetch, for example "10s".
	Timeout string `yaml:"timeout,omitempty"`
	// MaxBytes limits how much of a remote resource is read.
	MaxBytes int64 `yaml:"max_bytes,omitempty"`
	// UserAgent is sent with every HTTP request.
	UserAgent string `yaml:"user_agent,omitempty"`
	// AllowedSchemes restricts which reference schemes the loader accepts.
	AllowedSchemes []string `yaml:"allowed_schemes,omitempty"`
}

// LoadOptional reads htmlimg.yaml from dir if present. A missing file is not
// an error, the zero configuration is returned.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", Filename, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", Filename, err)
	}
	return &cfg, nil
}

// TimeoutOrDefault returns the configured timeout or fallback when unset or
// unparsable.
func (c *Config) TimeoutOrDefault(fallback time.Duration) time.Duration {
	if c == nil || c.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fallback
	}
	return d
}
