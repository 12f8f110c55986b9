package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var (
	sessionNotes string
	listLimit    int
	replayLast   bool
	replayEach   bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Record and replay move sessions",
	Long:  `Commands for storing move sequences in the session database and replaying them.`,
}

var sessionRecordCmd = &cobra.Command{
	Use:   "record <moves...>",
	Short: "Apply moves and store them as a session",
	Long: `Apply a move sequence to the selected puzzle and store every move with
the accumulated permutation label. Nothing is stored if a move fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSessionRecord,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionReplayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Rebuild the puzzle of a recorded session and apply its moves again.

Use --last to replay the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionReplay,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a recorded session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.AddCommand(sessionRecordCmd)
	sessionRecordCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes for this session")

	sessionCmd.AddCommand(sessionListCmd)
	sessionListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Number of sessions to show")

	sessionCmd.AddCommand(sessionReplayCmd)
	sessionReplayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	sessionReplayCmd.Flags().BoolVar(&replayEach, "each", false, "Print the puzzle after every move")

	sessionCmd.AddCommand(sessionDeleteCmd)
}

func runSessionRecord(cmd *cobra.Command, args []string) error {
	names, err := parseMoves(args)
	if err != nil {
		return err
	}

	p, err := newPuzzle()
	if err != nil {
		return err
	}

	moves := make([]storage.Move, 0, len(names))
	for _, name := range names {
		if err := p.Rotate(name); err != nil {
			return fmt.Errorf("failed to rotate: %w", err)
		}
		moves = append(moves, storage.Move{Name: name, AppliedLabel: p.AppliedLabel()})
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	sessionID, err := sessionRepo.Create(settings.Puzzle, settings.StartPreset, sessionNotes)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err := storage.NewMoveRepository(db).CreateBatch(sessionID, moves, 0); err != nil {
		return fmt.Errorf("failed to store moves: %w", err)
	}

	if err := sessionRepo.End(sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	logger.Debug("session recorded", "session", sessionID, "moves", len(moves))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", sessionID)
	fmt.Fprintf(out, "Moves:   %d\n", len(moves))
	fmt.Fprintf(out, "Solved:  %t\n", p.IsSolved())
	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	sessions, err := sessionRepo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Record one with: twisty session record <moves...>")
		return nil
	}

	fmt.Fprintf(out, "Recent sessions (showing %d):\n", len(sessions))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-36s  %-19s  %-14s  %-6s  %s\n", "ID", "Started", "Puzzle", "Moves", "Notes")
	fmt.Fprintln(out, "------------------------------------  -------------------  --------------  ------  -----")

	for _, s := range sessions {
		moves := "-"
		if count, err := moveRepo.Count(s.SessionID); err == nil && count > 0 {
			moves = fmt.Sprintf("%d", count)
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-14s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.Puzzle,
			moves,
			notes,
			status,
		)
	}

	return nil
}

func runSessionReplay(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)

	var session *storage.Session
	switch {
	case replayLast:
		session, err = sessionRepo.GetLast()
		if err != nil {
			return err
		}
		if session == nil {
			return fmt.Errorf("no sessions found")
		}
	case len(args) > 0:
		session, err = sessionRepo.Get(args[0])
		if err != nil {
			return err
		}
		if session == nil {
			return fmt.Errorf("session not found: %s", args[0])
		}
	default:
		return fmt.Errorf("please provide a session ID or use --last")
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}

	p, err := newPuzzleFor(session.Puzzle, session.StartPreset)
	if err != nil {
		return err
	}

	for _, r := range records {
		if err := p.Rotate(r.Name); err != nil {
			return fmt.Errorf("failed to replay move %d: %w", r.MoveIndex, err)
		}
		if p.AppliedLabel() != r.AppliedLabel {
			logger.Warn("replayed label differs from recorded",
				"move_index", r.MoveIndex,
				"recorded", r.AppliedLabel,
				"replayed", p.AppliedLabel(),
			)
		}
		if replayEach {
			if err := p.Render(out); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "Session: %s (%s, %s)\n", session.SessionID, session.Puzzle, session.StartPreset)
	fmt.Fprintf(out, "Moves:   %s\n", twisty.FormatSequence(storage.Names(records)))
	if !replayEach {
		if err := p.Render(out); err != nil {
			return err
		}
	}
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	session, err := sessionRepo.Get(args[0])
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", args[0])
	}

	if err := sessionRepo.Delete(session.SessionID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", session.SessionID)
	return nil
}
