// Package session drives a scramble run: it draws moves, hands them to the
// viewer through a bounded channel and records the run.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

// State represents the current state of a session.
type State int

const (
	StateIdle State = iota
	StateWaiting
	StateScrambling
	StateDone
)

// String returns the string representation of the session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateScrambling:
		return "scrambling"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// flushEvery is how many moves are buffered before they are written out.
const flushEvery = 100

// Options describes one scramble run.
type Options struct {
	Kind          string
	ScrambleTimes int
	Seed          uint64
	AvoidUndo     bool
	WaitForClick  bool
}

// Result is the outcome of a finished run.
type Result struct {
	RunID string // empty when no database is attached
	Seed  uint64
	Moves []colorcube.Move
	Final *colorcube.SixCube
}

// Session manages scramble runs.
type Session struct {
	db  *storage.DB
	log *logrus.Logger

	mu        sync.RWMutex
	state     State
	runID     string
	moveIndex int

	runRepo  *storage.RunRepository
	moveRepo *storage.MoveRepository
}

// New creates a session. db may be nil, in which case nothing is recorded.
func New(db *storage.DB, log *logrus.Logger) *Session {
	s := &Session{db: db, log: log, state: StateIdle}
	if db != nil {
		s.runRepo = storage.NewRunRepository(db)
		s.moveRepo = storage.NewMoveRepository(db)
	}
	return s
}

// ResolveSeed returns seed, or a time-based seed when seed is zero.
func ResolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// RunID returns the current run ID.
func (s *Session) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

// MoveCount returns the number of moves produced in the current run.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Scramble scrambles start, sending every move to out as it is drawn. With
// WaitForClick it waits for a click on clicks before starting and another
// one after the last move. Cancelling ctx during that last wait still
// returns the finished run. Sends block while out is full, which paces the
// run to whoever drains out. Scramble does not close out.
func (s *Session) Scramble(ctx context.Context, start *colorcube.SixCube, opts Options, out chan<- colorcube.Move, clicks <-chan struct{}) (*Result, error) {
	seed := ResolveSeed(opts.Seed)
	scrambler, err := colorcube.NewScrambler(colorcube.NewRand(seed),
		colorcube.WithCount(opts.ScrambleTimes),
		colorcube.WithUndoAvoidance(opts.AvoidUndo))
	if err != nil {
		return nil, err
	}

	if opts.WaitForClick {
		s.setState(StateWaiting)
		s.log.Debug("waiting for click before scrambling")
		if err := waitClick(ctx, clicks); err != nil {
			return nil, err
		}
	}

	runID, err := s.startRun(start, opts, seed)
	if err != nil {
		return nil, err
	}
	log := s.log.WithFields(logrus.Fields{"run": runID, "seed": seed, "size": start.Size()})
	log.WithField("count", scrambler.Count()).Info("scramble started")

	s.setState(StateScrambling)
	cube := start
	moves := make([]colorcube.Move, 0, scrambler.Count())
	pending := 0
	for {
		m, ok := scrambler.Next()
		if !ok {
			break
		}
		select {
		case out <- m:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		cube = cube.Rotate(m.Face, m.Direction)
		moves = append(moves, m)

		s.mu.Lock()
		s.moveIndex++
		s.mu.Unlock()

		if len(moves)-pending >= flushEvery {
			if err := s.recordMoves(runID, moves[pending:], pending); err != nil {
				return nil, err
			}
			pending = len(moves)
		}
	}
	if err := s.recordMoves(runID, moves[pending:], pending); err != nil {
		return nil, err
	}
	if err := s.finishRun(runID, cube); err != nil {
		return nil, err
	}
	log.WithField("moves", len(moves)).Info("scramble complete")

	if opts.WaitForClick {
		s.log.Debug("waiting for click after scrambling")
		// The run is already complete, so a cancel here only ends the wait.
		if err := waitClick(ctx, clicks); err != nil {
			s.log.WithError(err).Debug("stopped waiting for click")
		}
	}
	s.setState(StateDone)

	return &Result{RunID: runID, Seed: seed, Moves: moves, Final: cube}, nil
}

// Feed sends moves to out in order, stopping early if ctx is cancelled.
func Feed(ctx context.Context, moves []colorcube.Move, out chan<- colorcube.Move) error {
	for _, m := range moves {
		select {
		case out <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func waitClick(ctx context.Context, clicks <-chan struct{}) error {
	select {
	case <-clicks:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) startRun(start *colorcube.SixCube, opts Options, seed uint64) (string, error) {
	s.mu.Lock()
	s.moveIndex = 0
	s.runID = ""
	s.mu.Unlock()

	if s.runRepo == nil {
		return "", nil
	}

	kind := opts.Kind
	if kind == "" {
		kind = storage.KindAnimated
	}
	runID, err := s.runRepo.Create(storage.NewRun{
		Kind:          kind,
		Size:          start.Size(),
		Seed:          seed,
		ScrambleCount: opts.ScrambleTimes,
		AvoidUndo:     opts.AvoidUndo,
		InitialState:  colorcube.EncodeSixCube(start),
	})
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}

	s.mu.Lock()
	s.runID = runID
	s.mu.Unlock()
	return runID, nil
}

func (s *Session) recordMoves(runID string, moves []colorcube.Move, startIndex int) error {
	if s.moveRepo == nil || len(moves) == 0 {
		return nil
	}
	if err := s.moveRepo.CreateBatch(runID, moves, startIndex); err != nil {
		return fmt.Errorf("failed to record moves: %w", err)
	}
	return nil
}

func (s *Session) finishRun(runID string, final *colorcube.SixCube) error {
	if s.runRepo == nil {
		return nil
	}
	if err := s.runRepo.Finish(runID, colorcube.EncodeSixCube(final)); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}
