package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Run kinds.
const (
	KindAnimated = "animated" // scrambled in the viewer
	KindHeadless = "headless" // scrambled by the scramble command
)

// timeLayout is fixed width so that started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run represents a scramble run in the database.
type Run struct {
	RunID         string
	Kind          string
	StartedAt     time.Time
	EndedAt       *time.Time
	Size          int
	Seed          uint64
	ScrambleCount int
	AvoidUndo     bool
	InitialState  string
	FinalState    *string
}

// NewRun describes a run about to start.
type NewRun struct {
	Kind          string
	Size          int
	Seed          uint64
	ScrambleCount int
	AvoidUndo     bool
	InitialState  string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create creates a new run and returns its ID.
func (r *RunRepository) Create(run NewRun) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	// SQLite integers are signed; the seed round-trips through int64 bit for bit.
	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, kind, started_at, size, seed, scramble_count, avoid_undo, initial_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, run.Kind, startedAt.Format(timeLayout), run.Size, int64(run.Seed), run.ScrambleCount, run.AvoidUndo, run.InitialState)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// Finish records the final cube state and marks the run as ended.
func (r *RunRepository) Finish(runID, finalState string) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE runs SET ended_at = ?, final_state = ?
		WHERE run_id = ?
	`, endedAt.Format(timeLayout), finalState, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check finished run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return nil
}

const runColumns = `run_id, kind, started_at, ended_at, size, seed, scramble_count, avoid_undo, initial_state, final_state`

// Get retrieves a run by ID.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// Count returns the number of recorded runs.
func (r *RunRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run        Run
		startedAt  string
		endedAt    sql.NullString
		seed       int64
		finalState sql.NullString
	)
	err := row.Scan(&run.RunID, &run.Kind, &startedAt, &endedAt, &run.Size, &seed,
		&run.ScrambleCount, &run.AvoidUndo, &run.InitialState, &finalState)
	if err != nil {
		return nil, err
	}

	run.Seed = uint64(seed)
	run.StartedAt, err = time.Parse(timeLayout, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if endedAt.Valid {
		t, err := time.Parse(timeLayout, endedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		run.EndedAt = &t
	}
	if finalState.Valid {
		run.FinalState = &finalState.String
	}

	return &run, nil
}
