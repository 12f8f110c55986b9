package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Move is a move to be stored: its name and the accumulated permutation
// label after it was applied.
type Move struct {
	Name         string
	AppliedLabel string
}

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID       int64
	SessionID    string
	MoveIndex    int
	Name         string
	AppliedLabel string
	CreatedAt    time.Time
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, name, applied_label, created_at)
	VALUES (?, ?, ?, ?, ?)
`

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move Move) (int64, error) {
	result, err := r.db.Exec(insertMove, sessionID, moveIndex, move.Name, move.AppliedLabel, formatTime(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction, numbered
// from startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, moves []Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		createdAt := formatTime(time.Now())
		for i, move := range moves {
			_, err := tx.Exec(insertMove, sessionID, startIndex+i, move.Name, move.AppliedLabel, createdAt)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, name, applied_label, created_at
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var createdAtStr string
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Name, &m.AppliedLabel, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m.CreatedAt = parseTime(createdAtStr)
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Names returns the move names of records, for replaying with
// Puzzle.RotateMany.
func Names(records []MoveRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
