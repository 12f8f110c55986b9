package twisty

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

// Puzzle tracks the state of one puzzle as moves are applied to it.
//
// A Puzzle is not safe for concurrent use. Its Definition may be shared.
type Puzzle struct {
	def Definition
	cfg *config

	solved  State
	start   State
	current State
	before  State

	applied perm.Permutation
	moves   []string
}

// New creates a puzzle in the definition's start state.
// It fails with ErrDefinition if the start and solved states do not cover
// the same positions.
func New(def Definition, opts ...Option) (*Puzzle, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	solved := def.SolvedState()
	start := def.StartState()
	if !solved.SameKeys(start) {
		return nil, fmt.Errorf("%w: %s start state does not cover the solved positions", ErrDefinition, def.Name())
	}

	return &Puzzle{
		def:     def,
		cfg:     cfg,
		solved:  solved,
		start:   start,
		current: start.Clone(),
		before:  start.Clone(),
		applied: perm.Identity(),
	}, nil
}

// Rotate applies the move registered under name.
//
// The facelet at every position is replaced by the facelet found at the
// position the move sends it to. A move that reaches outside the position
// set fails with ErrDefinition and leaves the puzzle unchanged.
func (p *Puzzle) Rotate(name string) error {
	move, err := p.def.Permutation(name)
	if err != nil {
		return err
	}

	next := make(State, len(p.solved))
	for pos := range p.solved {
		source := move.Apply(pos)
		facelet, ok := p.current[source]
		if !ok {
			return fmt.Errorf("%w: %s move %q sends position %d to unknown position %d",
				ErrDefinition, p.def.Name(), name, pos, source)
		}
		next[pos] = facelet
	}

	wasSolved := p.IsSolved()

	p.applied = perm.Compose(p.applied, move)
	p.before = p.current
	p.current = next
	if p.cfg.moveHistory {
		p.moves = append(p.moves, name)
	}

	p.cfg.logger.Debug("rotated",
		slog.String("puzzle", p.def.Name()),
		slog.String("move", name),
		slog.String("applied", p.applied.Label()),
		slog.Int("degree", p.applied.Degree()),
		slog.Bool("solved", p.IsSolved()),
	)

	if p.cfg.onSolved != nil && !wasSolved && p.IsSolved() {
		p.cfg.onSolved(p.applied)
	}
	return nil
}

// RotateMany applies moves in order. It stops at the first failing move;
// moves applied before it are kept.
func (p *Puzzle) RotateMany(names ...string) error {
	for i, name := range names {
		if err := p.Rotate(name); err != nil {
			return fmt.Errorf("move %d of %d: %w", i+1, len(names), err)
		}
	}
	return nil
}

// RotateSequence parses a notation string and applies it.
// See ParseSequence for the accepted syntax.
func (p *Puzzle) RotateSequence(s string) error {
	names, err := ParseSequence(s)
	if err != nil {
		return err
	}
	return p.RotateMany(names...)
}

// Reset returns the puzzle to its start state and clears the history.
func (p *Puzzle) Reset() {
	p.before = p.start.Clone()
	p.current = p.start.Clone()
	p.applied = perm.Identity()
	p.moves = nil

	p.cfg.logger.Debug("reset", slog.String("puzzle", p.def.Name()))
}

// Definition returns the puzzle's definition.
func (p *Puzzle) Definition() Definition {
	return p.def
}

// Applied returns the composition of every move since the last reset.
func (p *Puzzle) Applied() perm.Permutation {
	return p.applied
}

// AppliedLabel returns the label of Applied, e.g. "id * f * r".
func (p *Puzzle) AppliedLabel() string {
	return p.applied.Label()
}

// Moves returns the names of the moves applied since the last reset.
// It is empty when move history is disabled.
func (p *Puzzle) Moves() []string {
	return append([]string(nil), p.moves...)
}

// Positions returns the puzzle's positions in ascending order.
func (p *Puzzle) Positions() []int {
	return p.solved.Positions()
}

// Current returns a copy of the current state.
func (p *Puzzle) Current() State {
	return p.current.Clone()
}

// Before returns a copy of the state before the last move.
func (p *Puzzle) Before() State {
	return p.before.Clone()
}

// Solved returns a copy of the solved state.
func (p *Puzzle) Solved() State {
	return p.solved.Clone()
}

// Start returns a copy of the start state.
func (p *Puzzle) Start() State {
	return p.start.Clone()
}

// FaceletAt returns the label of the facelet at pos.
func (p *Puzzle) FaceletAt(pos int) (int, bool) {
	facelet, ok := p.current[pos]
	return facelet, ok
}

// FaceAt returns the face the facelet at pos belongs to.
func (p *Puzzle) FaceAt(pos int) (string, bool) {
	facelet, ok := p.current[pos]
	if !ok {
		return "", false
	}
	return p.def.FaceName(facelet), true
}

// ColorAt returns the display color of the facelet at pos.
func (p *Puzzle) ColorAt(pos int) (Color, bool) {
	face, ok := p.FaceAt(pos)
	if !ok {
		return Grey, false
	}
	return p.def.Color(face), true
}

// Changed reports whether the facelet at pos moved on the last rotation.
func (p *Puzzle) Changed(pos int) bool {
	return p.current[pos] != p.before[pos]
}

// IsSolved reports whether the current state equals the solved state.
func (p *Puzzle) IsSolved() bool {
	return p.current.Equal(p.solved)
}

// Frame returns a snapshot of the puzzle for renderers.
func (p *Puzzle) Frame() Frame {
	return Frame{
		Applied: p.applied,
		Before:  p.before.Clone(),
		Current: p.current.Clone(),
		Solved:  p.solved.Clone(),
	}
}

// View draws the puzzle with r.
func (p *Puzzle) View(r *lipgloss.Renderer) string {
	return p.def.Render(r, p.Frame())
}

// Render draws the puzzle to w, using colors only if w is a terminal.
func (p *Puzzle) Render(w io.Writer) error {
	_, err := io.WriteString(w, p.View(lipgloss.NewRenderer(w)))
	return err
}
