package cli

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

// newPuzzle builds a puzzle from the selected variant and preset.
func newPuzzle(opts ...twisty.Option) (*twisty.Puzzle, error) {
	return newPuzzleFor(settings.Puzzle, settings.StartPreset, opts...)
}

func newPuzzleFor(name, preset string, opts ...twisty.Option) (*twisty.Puzzle, error) {
	def, err := twisty.Lookup(name, twisty.WithStartPreset(preset))
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle: %w", err)
	}

	p, err := twisty.New(def, append([]twisty.Option{twisty.WithLogger(logger)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle: %w", err)
	}
	return p, nil
}

// parseMoves joins args and parses them as one move sequence, so both
// `rotate f r` and `rotate "f r"` work.
func parseMoves(args []string) ([]string, error) {
	return twisty.ParseSequence(strings.Join(args, " "))
}

// openDB opens and migrates the session database.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if settings.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(settings.DBPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("database opened", "path", db.Path())
	return db, nil
}

// shortID trims a session UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
