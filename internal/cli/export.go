package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [run-id]",
		Short: "Export the moves of a recorded run",
		Long: `Export the move sequence of a run in text or JSON format.
Without a run ID the last run is exported.

Examples:
  colorcube export
  colorcube export <run-id> --format json
  colorcube export <run-id> --format txt -o moves.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	cmd.Flags().String("format", "txt", "Export format (txt, json)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

type moveJSON struct {
	MoveIndex int    `json:"move_index"`
	Face      string `json:"face"`
	Direction string `json:"direction"`
	Notation  string `json:"notation"`
}

type runJSON struct {
	RunID        string     `json:"run_id"`
	Kind         string     `json:"kind"`
	Size         int        `json:"size"`
	Seed         uint64     `json:"seed"`
	InitialState string     `json:"initial_state"`
	FinalState   *string    `json:"final_state,omitempty"`
	Moves        []moveJSON `json:"moves"`
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	runID, err := a.resolveRunID(args)
	if err != nil {
		return err
	}
	run, err := storage.NewRunRepository(a.db).Get(runID)
	if err != nil {
		return err
	}
	records, err := storage.NewMoveRepository(a.db).GetByRun(runID)
	if err != nil {
		return err
	}

	var text string
	switch strings.ToLower(format) {
	case "txt":
		moves, err := storage.ToMoves(records)
		if err != nil {
			return err
		}
		text = colorcube.FormatMoves(moves)

	case "json":
		doc := runJSON{
			RunID:        run.RunID,
			Kind:         run.Kind,
			Size:         run.Size,
			Seed:         run.Seed,
			InitialState: run.InitialState,
			FinalState:   run.FinalState,
			Moves:        make([]moveJSON, 0, len(records)),
		}
		for _, r := range records {
			doc.Moves = append(doc.Moves, moveJSON{
				MoveIndex: r.MoveIndex,
				Face:      r.Face,
				Direction: r.Direction,
				Notation:  r.Notation,
			})
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		text = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", format)
	}

	out := cmd.OutOrStdout()
	if output == "" {
		fmt.Fprintln(out, text)
		return nil
	}

	if dir := filepath.Dir(output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(out, "Exported %d moves to %s\n", len(records), output)
	return nil
}
