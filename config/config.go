// Package config loads the command-line driver's settings from YAML.
//
// A missing file is not an error: Load falls back to Default. Fields absent
// from the file keep their default values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrInvalid indicates a value that is out of range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrParse indicates that the file is not valid YAML for Config.
	ErrParse = errors.New("config: parse error")
)

// DefaultHitRadius is how close, in plane units, a click must land to a
// point to select it.
const DefaultHitRadius = 8.0

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the driver configuration.
type Config struct {
	// HitRadius is the selection radius for click and press gestures.
	HitRadius float64 `yaml:"hit_radius" json:"hit_radius"`

	// MaxPathDistance caps path queries; zero means no cap.
	MaxPathDistance float64 `yaml:"max_path_distance" json:"max_path_distance"`

	Log Log `yaml:"log" json:"log"`
}

// Log configures the zerolog logger.
type Log struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string `yaml:"level" json:"level"`

	// Format is FormatConsole or FormatJSON.
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HitRadius: DefaultHitRadius,
		Log: Log{
			Level:  zerolog.InfoLevel.String(),
			Format: FormatConsole,
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path or a file that does not exist yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	return cfg.Validate()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.HitRadius <= 0 || math.IsNaN(c.HitRadius) || math.IsInf(c.HitRadius, 0) {
		return fmt.Errorf("%w: hit_radius must be positive and finite, got %v", ErrInvalid, c.HitRadius)
	}
	if c.MaxPathDistance < 0 || math.IsNaN(c.MaxPathDistance) {
		return fmt.Errorf("%w: max_path_distance must be non-negative, got %v", ErrInvalid, c.MaxPathDistance)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalid, FormatConsole, FormatJSON, c.Log.Format)
	}

	return nil
}

// ParseLevel converts Level to a zerolog.Level.
func (l Log) ParseLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return lvl, nil
}
