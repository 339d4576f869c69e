package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 1 {
		return fmt.Errorf("--limit must be at least 1 (got %d)", limit)
	}
	runs, err := storage.NewRunRepository(a.db).List(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet. Start one with: colorcube run")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-8s  %-19s  %4s  %6s  %s\n", "RUN", "KIND", "STARTED", "SIZE", "MOVES", "STATUS")
	for _, run := range runs {
		status := "finished"
		if run.EndedAt == nil {
			status = "incomplete"
		}
		fmt.Fprintf(out, "%-36s  %-8s  %-19s  %4d  %6d  %s\n",
			run.RunID,
			run.Kind,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Size,
			run.ScrambleCount,
			status,
		)
	}
	return nil
}
