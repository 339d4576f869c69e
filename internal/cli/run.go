package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/config"
	"github.com/kenzierocks/color-cube-solver/internal/display"
	"github.com/kenzierocks/color-cube-solver/internal/session"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

// clickBuffer is how many clicks may wait for the producer.
const clickBuffer = 16

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scramble the cube in an animated display",
		Long: `Open the cube display and scramble it, animating every turn.

Keyboard and mouse:
  space/enter/click - continue (with --wait-for-click)
  q/Esc             - Quit

The run is recorded and can be replayed later with "colorcube replay".`,
		Args: cobra.NoArgs,
		RunE: runAnimated,
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func addRunFlags(fs *pflag.FlagSet) {
	addCubeFlags(fs)
	fs.IntP(config.KeyMoveSpeed, "m", config.DefaultMoveSpeed, "Frames spent animating each move")
	fs.BoolP(config.KeyWaitForClick, "c", false, "Wait for a click before and after scrambling")
	fs.Int(config.KeyQueue, config.DefaultQueue, "Number of moves that may wait for the display")
}

func addCubeFlags(fs *pflag.FlagSet) {
	fs.IntP(config.KeySize, "s", config.DefaultSize, "Size of the cube (odd, at least 3)")
	fs.Int(config.KeyScrambleTimes, config.DefaultScrambleTimes, "Number of times to rotate when scrambling")
	fs.Uint64(config.KeySeed, 0, "Random seed (0 picks one from the clock)")
}

type scrambleOutcome struct {
	res *session.Result
	err error
}

func runAnimated(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	start, err := colorcube.NewSixCube(a.cfg.Size)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	moves := make(chan colorcube.Move, a.cfg.Queue)
	clicks := make(chan struct{}, clickBuffer)
	seed := session.ResolveSeed(a.cfg.Seed)

	sess := session.New(a.db, a.log)
	done := make(chan scrambleOutcome, 1)
	go func() {
		defer close(moves)
		res, err := sess.Scramble(ctx, start, session.Options{
			Kind:          storage.KindAnimated,
			ScrambleTimes: a.cfg.ScrambleTimes,
			Seed:          seed,
			AvoidUndo:     true,
			WaitForClick:  a.cfg.WaitForClick,
		}, moves, clicks)
		done <- scrambleOutcome{res: res, err: err}
	}()

	model := display.New(start, display.Options{
		Title:     fmt.Sprintf("Color Cube %d×%d×%d", a.cfg.Size, a.cfg.Size, a.cfg.Size),
		MoveSpeed: a.cfg.MoveSpeed,
		Moves:     moves,
		Clicks:    clicks,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("display error: %w", err)
	}

	// The display is gone; stop the producer if it is still waiting on it.
	cancel()
	out := <-done
	if errors.Is(out.err, context.Canceled) {
		a.log.WithField("moves", sess.MoveCount()).Info("scramble interrupted")
		fmt.Fprintf(cmd.OutOrStdout(), "Scramble interrupted after %d moves\n", sess.MoveCount())
		return nil
	}
	if out.err != nil {
		return out.err
	}

	a.rememberRun(out.res.RunID, out.res.Seed, a.cfg.Size)
	fmt.Fprintf(cmd.OutOrStdout(), "Run %s: %d moves (seed %d)\n", out.res.RunID, len(out.res.Moves), out.res.Seed)
	return nil
}
