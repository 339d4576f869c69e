package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/config"
	"github.com/kenzierocks/color-cube-solver/internal/display"
	"github.com/kenzierocks/color-cube-solver/internal/session"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

// ErrStateMismatch is returned when replaying a run does not reproduce its
// recorded final state.
var ErrStateMismatch = errors.New("replayed state does not match the recorded final state")

const verifyOnlyFlag = "verify-only"

func newReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [run-id]",
		Short: "Replay a recorded run",
		Long: `Replay the moves of a recorded run in the cube display.

Before anything is shown, the moves are applied to the recorded starting
cube and the result is checked against the recorded final cube.

Usage:
  colorcube replay                  # Replay the last run
  colorcube replay <run-id>         # Replay a specific run
  colorcube replay --verify-only    # Only check the recorded moves`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}
	cmd.Flags().IntP(config.KeyMoveSpeed, "m", config.DefaultMoveSpeed, "Frames spent animating each move")
	cmd.Flags().Bool(verifyOnlyFlag, false, "Check the run without opening the display")
	return cmd
}

// storedRun is a run loaded back from the database.
type storedRun struct {
	run   *storage.Run
	start *colorcube.SixCube
	moves []colorcube.Move
}

func loadRun(db *storage.DB, runID string) (*storedRun, error) {
	run, err := storage.NewRunRepository(db).Get(runID)
	if err != nil {
		return nil, err
	}
	start, err := colorcube.DecodeSixCube(run.Size, run.InitialState)
	if err != nil {
		return nil, fmt.Errorf("failed to decode initial state: %w", err)
	}
	records, err := storage.NewMoveRepository(db).GetByRun(runID)
	if err != nil {
		return nil, err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return nil, err
	}
	return &storedRun{run: run, start: start, moves: moves}, nil
}

// verify applies the moves and compares the result with the recorded final
// state. Runs that never finished have nothing to compare against.
func (s *storedRun) verify() (*colorcube.SixCube, error) {
	final := s.start.Apply(s.moves...)
	if s.run.FinalState == nil {
		return final, nil
	}
	if colorcube.EncodeSixCube(final) != *s.run.FinalState {
		return nil, fmt.Errorf("%w (run %s)", ErrStateMismatch, s.run.RunID)
	}
	return final, nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	verifyOnly, _ := cmd.Flags().GetBool(verifyOnlyFlag)
	a, err := setup(cmd, !verifyOnly)
	if err != nil {
		return err
	}
	defer a.Close()

	runID, err := a.resolveRunID(args)
	if err != nil {
		return err
	}
	stored, err := loadRun(a.db, runID)
	if err != nil {
		return err
	}
	log := a.log.WithField("run", runID)

	if _, err := stored.verify(); err != nil {
		return err
	}
	log.WithField("moves", len(stored.moves)).Info("run verified")

	out := cmd.OutOrStdout()
	if verifyOnly {
		fmt.Fprintf(out, "Run %s: %d moves, final state verified\n", runID, len(stored.moves))
		return nil
	}
	if a.cfg.MoveSpeed <= 0 {
		return fmt.Errorf("%w (got %d)", config.ErrInvalidMoveSpeed, a.cfg.MoveSpeed)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	moves := make(chan colorcube.Move, a.cfg.Queue)
	go func() {
		defer close(moves)
		if err := session.Feed(ctx, stored.moves, moves); err != nil {
			log.WithError(err).Debug("replay stopped")
		}
	}()

	model := display.New(stored.start, display.Options{
		Title:     fmt.Sprintf("Replay %s", runID),
		MoveSpeed: a.cfg.MoveSpeed,
		Moves:     moves,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	fmt.Fprintf(out, "Replayed %d of %d moves\n", model.Applied(), len(stored.moves))
	return nil
}
