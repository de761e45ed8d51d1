/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/pkx/pkg/pkm"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the decoder configuration
type Config struct {
	Decode  Decode  `yaml:"decode"`
	Logging Logging `yaml:"logging"`
	Metrics Metrics `yaml:"metrics"`
}

// Decode controls which formats are accepted and how failures are reported
type Decode struct {
	FallbackToDefault bool     `yaml:"fallback_to_default"`
	Formats           []string `yaml:"formats"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Metrics contains Prometheus settings
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	formats := make([]string, 0, len(pkm.Formats))
	for _, f := range pkm.Formats {
		formats = append(formats, f.String())
	}

	return &Config{
		Decode: Decode{
			FallbackToDefault: true,
			Formats:           formats,
		},
		Logging: Logging{
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "pkx",
		},
	}
}

// Parse reads YAML on top of DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks every field that has a closed set of values
func (c *Config) Validate() error {
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.Decode.EnabledFormats(); err != nil {
		return err
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics.namespace is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}

// SlogLevel maps the configured level name
func (l Logging) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, l.Level)
	}
	return level, nil
}

// EnabledFormats resolves the configured format names. An empty list is rejected.
func (d Decode) EnabledFormats() ([]pkm.Format, error) {
	if len(d.Formats) == 0 {
		return nil, fmt.Errorf("%w: decode.formats is empty", ErrInvalidConfig)
	}

	formats := make([]pkm.Format, 0, len(d.Formats))
	for _, name := range d.Formats {
		f, err := pkm.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("%w: decode.formats: %w", ErrInvalidConfig, err)
		}
		formats = append(formats, f)
	}
	return formats, nil
}
