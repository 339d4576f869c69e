package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/session"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

const (
	avoidUndoFlag = "avoid-undo"
	noNetFlag     = "no-net"
)

func newScrambleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Scramble without a display and print the result",
		Long: `Scramble a solved cube, print the moves and the resulting net, and
record the run.

Examples:
  colorcube scramble
  colorcube scramble --size 5 --scramble-times 40 --seed 7`,
		Args: cobra.NoArgs,
		RunE: runScramble,
	}
	addCubeFlags(cmd.Flags())
	cmd.Flags().Bool(avoidUndoFlag, true, "Never follow a move with its inverse")
	cmd.Flags().Bool(noNetFlag, false, "Do not print the final net")
	return cmd
}

func runScramble(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	avoidUndo, _ := cmd.Flags().GetBool(avoidUndoFlag)
	noNet, _ := cmd.Flags().GetBool(noNetFlag)

	start, err := colorcube.NewSixCube(a.cfg.Size)
	if err != nil {
		return err
	}

	// Nothing animates here; a drain keeps the producer from blocking.
	moves := make(chan colorcube.Move, a.cfg.Queue)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for range moves {
		}
	}()

	res, err := session.New(a.db, a.log).Scramble(cmd.Context(), start, session.Options{
		Kind:          storage.KindHeadless,
		ScrambleTimes: a.cfg.ScrambleTimes,
		Seed:          a.cfg.Seed,
		AvoidUndo:     avoidUndo,
	}, moves, nil)
	close(moves)
	<-drained
	if err != nil {
		return err
	}

	a.rememberRun(res.RunID, res.Seed, a.cfg.Size)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:  %s\n", res.RunID)
	fmt.Fprintf(out, "Seed: %d\n", res.Seed)
	fmt.Fprintf(out, "Moves (%d):\n%s\n", len(res.Moves), colorcube.FormatMoves(res.Moves))
	if !noNet {
		fmt.Fprintln(out)
		printNet(out, res.Final)
	}
	return nil
}

func printNet(out io.Writer, c *colorcube.SixCube) {
	fmt.Fprint(out, colorcube.FormatNet(c, colorcube.SixColor.String))
}
