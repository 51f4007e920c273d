// Package config provides configuration for the Quiver CLI and demos.
// It defines a single Config structure covering the memory-pool sizing knobs
// and logging, loaded from YAML files with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the sizing and logging knobs for a Quiver run.
type Config struct {
	// BufferSize is the fixed element capacity of the flat arena
	BufferSize int `yaml:"buffer_size" json:"buffer_size"`
	// RangeCapacity bounds the arena's free-range list
	RangeCapacity int `yaml:"range_capacity" json:"range_capacity"`
	// PoolCapacity bounds the object pool backing double buffers
	PoolCapacity int `yaml:"pool_capacity" json:"pool_capacity"`
	// Steps is how many commit cycles the stream command runs
	Steps int `yaml:"steps" json:"steps"`
	// PointsPerStep is how many random points each step stages
	PointsPerStep int `yaml:"points_per_step" json:"points_per_step"`

	// Logging configures the structured logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is the minimum level to emit (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects json or console output
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored, stack-traced output
	Development bool `yaml:"development" json:"development"`
}

// Default returns a configuration with sensible defaults for interactive use.
func Default() *Config {
	return &Config{
		BufferSize:    1000,
		RangeCapacity: 10,
		PoolCapacity:  8,
		Steps:         5,
		PointsPerStep: 3,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Validate checks the configuration for impossible sizings.
func (c *Config) Validate() error {
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize)
	}
	if c.RangeCapacity < 0 {
		return fmt.Errorf("range_capacity must be non-negative, got %d", c.RangeCapacity)
	}
	if c.PoolCapacity < 0 {
		return fmt.Errorf("pool_capacity must be non-negative, got %d", c.PoolCapacity)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.PointsPerStep < 0 {
		return fmt.Errorf("points_per_step must be non-negative, got %d", c.PointsPerStep)
	}
	if c.Steps*c.PointsPerStep > c.BufferSize {
		return fmt.Errorf("buffer_size %d cannot hold %d steps of %d points",
			c.BufferSize, c.Steps, c.PointsPerStep)
	}
	return nil
}

// Load loads a configuration from a YAML file
func Load(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller and validated
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// Save saves a configuration to a YAML file
func Save(filePath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
