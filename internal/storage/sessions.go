package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when updating a session that does not exist.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session represents a recorded puzzle session.
type Session struct {
	SessionID   string
	Puzzle      string
	StartPreset string
	StartedAt   time.Time
	EndedAt     *time.Time
	Notes       *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a session for puzzle from the given start preset and
// returns its ID.
func (r *SessionRepository) Create(puzzle, startPreset, notes string) (string, error) {
	id := uuid.New().String()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, puzzle, start_preset, started_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, puzzle, startPreset, formatTime(time.Now()), notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete.
func (r *SessionRepository) End(sessionID string) error {
	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?
		WHERE session_id = ?
	`, formatTime(time.Now()), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return nil
}

const sessionColumns = `session_id, puzzle, start_preset, started_at, ended_at, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &s.Puzzle, &s.StartPreset, &startedAtStr, &endedAtStr, &s.Notes); err != nil {
		return Session{}, err
	}

	s.StartedAt = parseTime(startedAtStr)
	if endedAtStr.Valid {
		t := parseTime(endedAtStr.String)
		s.EndedAt = &t
	}

	return s, nil
}

// Get retrieves a session by ID. It returns nil if there is none.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE session_id = ?
	`, sessionID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &s, nil
}

// GetLast retrieves the most recent session. It returns nil if there is
// none.
func (r *SessionRepository) GetLast() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// Delete deletes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
