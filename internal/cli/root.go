// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	puzzleName string
	presetName string
	verbose    bool

	// Set by loadSettings before any command runs
	settings config.Config
	logger   = slog.New(slog.DiscardHandler)
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Twisty puzzle permutation explorer",
	Long: `twisty - explore twisty puzzles as permutation groups.

Apply moves to a 2x2 cube or an inflated 3x3 tetrahedron, inspect the
cycle structure of move sequences, play interactively in the terminal and
record sessions to a local database for replay.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.twisty/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twisty/twisty.db)")
	rootCmd.PersistentFlags().StringVarP(&puzzleName, "puzzle", "p", "", "Puzzle variant (see 'twisty puzzles')")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "Start preset (solved, diagonal-fixed, flipped-corners)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadSettings reads the config file and builds the logger. Flags win over
// the config.
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.Load(configPath)
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if puzzleName != "" {
		settings.Puzzle = puzzleName
	}
	if presetName != "" {
		settings.StartPreset = presetName
	}
	if dbPath != "" {
		settings.DBPath = dbPath
	}

	level, err := settings.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("settings loaded",
		slog.String("puzzle", settings.Puzzle),
		slog.String("preset", settings.StartPreset),
		slog.String("db", settings.DBPath),
	)
	return nil
}
