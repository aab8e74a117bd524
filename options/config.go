package options

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config configures an engine.
//
//	inherit: false
//	diagnostics:
//	  level: warning
//	  format: text
type Config struct {
	Options     `yaml:",inline"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// DiagnosticsConfig configures where usage diagnostics go.
type DiagnosticsConfig struct {
	// Level is a logrus level name; "off" drops diagnostics.
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	var c Config
	applyDefaults(&c)
	return c
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Diagnostics.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("diagnostics.format must be %q or %q, got %q", FormatText, FormatJSON, c.Diagnostics.Format)
	}

	return nil
}

// MarshalConfig serializes a Config to YAML.
func MarshalConfig(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	c.Diagnostics.Level = strings.ToLower(strings.TrimSpace(c.Diagnostics.Level))
	if c.Diagnostics.Level == "" {
		c.Diagnostics.Level = "warning"
	}

	c.Diagnostics.Format = strings.ToLower(strings.TrimSpace(c.Diagnostics.Format))
	if c.Diagnostics.Format == "" {
		c.Diagnostics.Format = FormatText
	}
}
