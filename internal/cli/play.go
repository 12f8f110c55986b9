package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
	"github.com/SeamusWaldron/twisty/pkg/perm"
)

var (
	playRecord bool
	playNotes  string
	playResume string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the puzzle interactively",
	Long: `Start an interactive TUI showing the puzzle net.

Keyboard shortcuts:
  f u r d l b   - Turn a face clockwise
  F U R D L B   - Turn a face counterclockwise
  0             - Reset to the start state
  q/Esc         - Quit

With --record every move is stored in the session database. --resume
replays a recorded session and keeps recording into it.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record the session to the database")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes for the recorded session")
	playCmd.Flags().StringVar(&playResume, "resume", "", "Continue recording the given session")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceKeys are the keys that turn a face; upper case turns it back.
const faceKeys = "furdlb"

// sessionRecorder stores the moves of one play session.
type sessionRecorder struct {
	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
	puzzle   string
	preset   string
	notes    string

	sessionID string
	next      int
}

func newSessionRecorder(db *storage.DB, puzzle, preset, notes string) (*sessionRecorder, error) {
	r := &sessionRecorder{
		sessions: storage.NewSessionRepository(db),
		moves:    storage.NewMoveRepository(db),
		puzzle:   puzzle,
		preset:   preset,
		notes:    notes,
	}
	if err := r.start(); err != nil {
		return nil, err
	}
	return r, nil
}

// resumeSession replays the stored moves of sessionID and returns a
// builder for the replayed puzzle and a recorder that appends to the
// session.
func resumeSession(db *storage.DB, sessionID string) (func(opts ...twisty.Option) (*twisty.Puzzle, error), *sessionRecorder, error) {
	sessions := storage.NewSessionRepository(db)
	moves := storage.NewMoveRepository(db)

	session, err := sessions.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := moves.GetBySession(session.SessionID)
	if err != nil {
		return nil, nil, err
	}
	next, err := moves.GetNextIndex(session.SessionID)
	if err != nil {
		return nil, nil, err
	}

	rec := &sessionRecorder{
		sessions:  sessions,
		moves:     moves,
		puzzle:    session.Puzzle,
		preset:    session.StartPreset,
		sessionID: session.SessionID,
		next:      next,
	}
	if session.Notes != nil {
		rec.notes = *session.Notes
	}

	build := func(opts ...twisty.Option) (*twisty.Puzzle, error) {
		p, err := newPuzzleFor(session.Puzzle, session.StartPreset, opts...)
		if err != nil {
			return nil, err
		}
		if err := p.RotateMany(storage.Names(records)...); err != nil {
			return nil, fmt.Errorf("failed to replay session: %w", err)
		}
		return p, nil
	}
	return build, rec, nil
}

func (r *sessionRecorder) start() error {
	id, err := r.sessions.Create(r.puzzle, r.preset, r.notes)
	if err != nil {
		return err
	}
	r.sessionID = id
	r.next = 0
	return nil
}

func (r *sessionRecorder) record(name, appliedLabel string) error {
	if _, err := r.moves.Create(r.sessionID, r.next, storage.Move{Name: name, AppliedLabel: appliedLabel}); err != nil {
		return err
	}
	r.next++
	return nil
}

// restart ends the current session and opens a new one, so every stored
// session replays from the start state.
func (r *sessionRecorder) restart() error {
	if err := r.end(); err != nil {
		return err
	}
	return r.start()
}

func (r *sessionRecorder) end() error {
	return r.sessions.End(r.sessionID)
}

// playModel is the bubbletea model for the play TUI.
type playModel struct {
	puzzle   *twisty.Puzzle
	renderer *lipgloss.Renderer
	recorder *sessionRecorder

	lastMove string
	solves   int
	sessions []string
	err      error
	quitting bool
}

// newPlayModel builds the puzzle through build so the model can count
// solves.
func newPlayModel(build func(opts ...twisty.Option) (*twisty.Puzzle, error), r *lipgloss.Renderer) (*playModel, error) {
	m := &playModel{renderer: r}

	p, err := build(twisty.WithSolvedCallback(func(perm.Permutation) {
		m.solves++
	}))
	if err != nil {
		return nil, err
	}
	m.puzzle = p
	return m, nil
}

// record stores every following move through rec.
func (m *playModel) record(rec *sessionRecorder) {
	m.recorder = rec
	m.sessions = append(m.sessions, rec.sessionID)
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		if m.recorder != nil {
			if err := m.recorder.end(); err != nil {
				m.err = err
			}
		}
		return m, tea.Quit

	case "0":
		m.reset()

	default:
		if name, ok := moveForKey(key); ok {
			m.rotate(name)
		}
	}

	return m, nil
}

// moveForKey maps a face key to its move name.
func moveForKey(key string) (string, bool) {
	if len(key) != 1 {
		return "", false
	}
	lower := strings.ToLower(key)
	if !strings.Contains(faceKeys, lower) {
		return "", false
	}
	if lower != key {
		return lower + "i", true
	}
	return lower, true
}

func (m *playModel) rotate(name string) {
	m.err = nil
	if err := m.puzzle.Rotate(name); err != nil {
		m.err = err
		return
	}
	m.lastMove = name

	if m.recorder != nil {
		if err := m.recorder.record(name, m.puzzle.AppliedLabel()); err != nil {
			m.err = fmt.Errorf("failed to record move: %w", err)
		}
	}
}

func (m *playModel) reset() {
	m.err = nil
	m.lastMove = ""
	m.puzzle.Reset()

	if m.recorder != nil {
		if err := m.recorder.restart(); err != nil {
			m.err = fmt.Errorf("failed to restart session: %w", err)
			return
		}
		m.sessions = append(m.sessions, m.recorder.sessionID)
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("twisty: " + m.puzzle.Definition().Name()))
	b.WriteString("\n")
	if m.recorder != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Recording session %s", shortID(m.recorder.sessionID))))
		b.WriteString("\n")
	}

	b.WriteString(m.puzzle.View(m.renderer))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Moves: %d  Solves: %d", len(m.puzzle.Moves()), m.solves))
	if m.lastMove != "" {
		b.WriteString("  Last: " + moveStyle.Render(m.lastMove))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("f u r d l b: turn  F U R D L B: turn back  0: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	build := newPuzzle
	var rec *sessionRecorder

	if playRecord || playResume != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if playResume != "" {
			build, rec, err = resumeSession(db, playResume)
		} else {
			rec, err = newSessionRecorder(db, settings.Puzzle, settings.StartPreset, playNotes)
		}
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
	}

	model, err := newPlayModel(build, lipgloss.DefaultRenderer())
	if err != nil {
		if rec != nil {
			_ = rec.end()
		}
		return err
	}
	if rec != nil {
		model.record(rec)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if model.err != nil {
		return model.err
	}
	for _, id := range model.sessions {
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded session %s\n", id)
	}
	return nil
}
