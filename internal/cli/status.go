package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show settings and recorded run information",
		Long:  `Display the effective settings, the database in use and the last recorded run.`,
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Color Cube Status")
	fmt.Fprintln(out, "=================")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Database: %s\n", a.db.Path())
	if version, err := a.db.CurrentVersion(); err == nil {
		fmt.Fprintf(out, "Schema version: %d\n", version)
	}

	runRepo := storage.NewRunRepository(a.db)
	total, err := runRepo.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total runs: %d\n", total)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Size: %d  Scramble times: %d  Move speed: %d  Queue: %d\n",
		a.cfg.Size, a.cfg.ScrambleTimes, a.cfg.MoveSpeed, a.cfg.Queue)
	fmt.Fprintln(out)

	lastID := a.state.LastRunID()
	if lastID == "" {
		fmt.Fprintln(out, "No runs recorded yet")
		return nil
	}
	run, err := runRepo.Get(lastID)
	if err != nil {
		fmt.Fprintf(out, "Last run: %s (not in this database)\n", lastID)
		return nil
	}
	fmt.Fprintf(out, "Last run: %s\n", run.RunID)
	fmt.Fprintf(out, "  Started: %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "  Size: %d  Moves: %d  Seed: %d\n", run.Size, run.ScrambleCount, run.Seed)
	return nil
}
