package storage

import (
	"database/sql"
	"fmt"

	colorcube "github.com/kenzierocks/color-cube-solver"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	RunID     string
	MoveIndex int
	Face      string
	Direction string
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(runID string, moveIndex int, move colorcube.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (run_id, move_index, face, direction, notation)
		VALUES (?, ?, ?, ?, ?)
	`, runID, moveIndex, move.Face.String(), move.Direction.String(), move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(runID string, moves []colorcube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO moves (run_id, move_index, face, direction, notation)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare move insert: %w", err)
		}
		defer stmt.Close()

		for i, move := range moves {
			_, err := stmt.Exec(runID, startIndex+i, move.Face.String(), move.Direction.String(), move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetByRun retrieves all moves for a run in order.
func (r *MoveRepository) GetByRun(runID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, run_id, move_index, face, direction, notation
		FROM moves
		WHERE run_id = ?
		ORDER BY move_index
	`, runID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.RunID, &m.MoveIndex, &m.Face, &m.Direction, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a run.
func (r *MoveRepository) Count(runID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE run_id = ?", runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords back to moves.
func ToMoves(records []MoveRecord) ([]colorcube.Move, error) {
	moves := make([]colorcube.Move, len(records))
	for i, r := range records {
		m, err := colorcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
