// Package config loads twisty's settings from ~/.twisty/config.yaml with
// TWISTY_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/twisty"
)

// EnvPrefix is prepended to every environment override, e.g. TWISTY_PUZZLE.
const EnvPrefix = "TWISTY"

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the CLI defaults. Command-line flags take precedence.
type Config struct {
	// Puzzle is the variant used when --puzzle is not given.
	Puzzle string `yaml:"puzzle" envconfig:"PUZZLE"`

	// StartPreset selects the start state of new puzzles.
	StartPreset string `yaml:"start_preset" envconfig:"START_PRESET"`

	// DBPath is the session database. Empty means ~/.twisty/twisty.db.
	DBPath string `yaml:"db_path" envconfig:"DB_PATH"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Puzzle:      twisty.Cube2x2Name,
		StartPreset: twisty.PresetSolved,
		LogLevel:    "info",
	}
}

// DefaultPath returns ~/.twisty/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".twisty", "config.yaml"), nil
}

// Load reads the config file at path, creating it with defaults if it does
// not exist, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDefault loads the config from DefaultPath.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

func createDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}

// Validate checks the puzzle name and log level.
func (c Config) Validate() error {
	if !slices.Contains(twisty.Variants(), c.Puzzle) {
		return fmt.Errorf("%w: unknown puzzle %q", ErrInvalid, c.Puzzle)
	}
	if c.StartPreset == "" {
		return fmt.Errorf("%w: start_preset is empty", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}
