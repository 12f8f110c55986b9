package twisty

import (
	"log/slog"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// Option configures Puzzle behavior.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	moveHistory bool
	onSolved    func(applied perm.Permutation)
}

func defaultConfig() *config {
	return &config{
		logger:      slog.New(slog.DiscardHandler),
		moveHistory: true,
	}
}

// WithLogger sets the logger used for rotation and reset events.
// Rotations are logged at debug level. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMoveHistory enables or disables move name tracking.
// When enabled (default), applied move names are accessible via Moves().
// The accumulated permutation is kept either way.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithSolvedCallback sets a callback that fires when a rotation brings an
// unsolved puzzle to the solved state. It receives the accumulated
// permutation at that point.
func WithSolvedCallback(cb func(applied perm.Permutation)) Option {
	return func(c *config) {
		c.onSolved = cb
	}
}

// DefinitionOption configures a puzzle definition at construction.
type DefinitionOption func(*definitionConfig)

type definitionConfig struct {
	startPreset string
}

func newDefinitionConfig(opts []DefinitionOption) *definitionConfig {
	cfg := &definitionConfig{startPreset: PresetSolved}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithStartPreset selects the start state a definition hands to new
// puzzles. Every definition supports PresetSolved.
func WithStartPreset(name string) DefinitionOption {
	return func(c *definitionConfig) {
		if name != "" {
			c.startPreset = name
		}
	}
}
