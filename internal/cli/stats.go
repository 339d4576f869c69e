package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kenzierocks/color-cube-solver/internal/analysis"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [run-id]",
		Short: "Show move statistics for recorded runs",
		Long: `Show how the moves of a run are distributed, how many of them cancel
out and which move sequences repeat. Without a run ID the last run is used;
with --runs the most recent runs are mined together.

Examples:
  colorcube stats
  colorcube stats <run-id> --json
  colorcube stats --runs 10 --min 3 --max 6`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStats,
	}
	cmd.Flags().Int("runs", 0, "Mine repeated sequences across this many recent runs")
	cmd.Flags().Int("min", 2, "Shortest sequence length to mine")
	cmd.Flags().Int("max", 4, "Longest sequence length to mine")
	cmd.Flags().Int("top", 5, "Sequences to show per length")
	cmd.Flags().Bool("json", false, "Print JSON")
	return cmd
}

type statsReport struct {
	RunID   string                    `json:"run_id,omitempty"`
	Runs    int                       `json:"runs"`
	Profile *analysis.MovementProfile `json:"profile,omitempty"`
	NGrams  *analysis.NGramReport     `json:"ngrams"`
}

func runStats(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	recent, _ := flags.GetInt("runs")
	minN, _ := flags.GetInt("min")
	maxN, _ := flags.GetInt("max")
	topK, _ := flags.GetInt("top")
	asJSON, _ := flags.GetBool("json")
	if minN < 1 || maxN < minN {
		return fmt.Errorf("invalid sequence lengths: min %d, max %d", minN, maxN)
	}
	if topK < 1 {
		return fmt.Errorf("--top must be at least 1 (got %d)", topK)
	}

	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	moveRepo := storage.NewMoveRepository(a.db)
	loadMoves := func(runID string) (*analysis.NGramReport, *analysis.MovementProfile, error) {
		records, err := moveRepo.GetByRun(runID)
		if err != nil {
			return nil, nil, err
		}
		moves, err := storage.ToMoves(records)
		if err != nil {
			return nil, nil, err
		}
		return analysis.MineNGrams(moves, minN, maxN, topK), analysis.AnalyzeMovementProfile(moves), nil
	}

	var report statsReport
	if recent > 0 {
		runs, err := storage.NewRunRepository(a.db).List(recent)
		if err != nil {
			return err
		}
		perRun := make(map[string]*analysis.NGramReport, len(runs))
		for _, run := range runs {
			ngrams, _, err := loadMoves(run.RunID)
			if err != nil {
				return err
			}
			perRun[run.RunID] = ngrams
		}
		report.Runs = len(runs)
		report.NGrams = analysis.MineNGramsAcrossRuns(perRun, topK)
	} else {
		runID, err := a.resolveRunID(args)
		if err != nil {
			return err
		}
		if _, err := storage.NewRunRepository(a.db).Get(runID); err != nil {
			return err
		}
		report.RunID = runID
		report.Runs = 1
		report.NGrams, report.Profile, err = loadMoves(runID)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	printStats(out, &report)
	return nil
}

func printStats(out io.Writer, r *statsReport) {
	if r.RunID != "" {
		fmt.Fprintf(out, "Run: %s\n", r.RunID)
	} else {
		fmt.Fprintf(out, "Runs: %d\n", r.Runs)
	}

	if p := r.Profile; p != nil {
		fmt.Fprintf(out, "Moves: %d (net %d after cancelling)\n", p.TotalMoves, p.NetMoves)
		fmt.Fprintf(out, "Undo pairs: %d  Quad runs: %d\n", p.UndoPairs, p.QuadRuns)
		fmt.Fprintf(out, "Most used face: %s\n", p.MostUsedFace)

		faces := make([]string, 0, len(p.FaceCounts))
		for face, count := range p.FaceCounts {
			faces = append(faces, fmt.Sprintf("%s=%d", face, count))
		}
		sort.Strings(faces)
		fmt.Fprintf(out, "Faces: %s\n", strings.Join(faces, " "))
		fmt.Fprintf(out, "Directions: CW=%d CCW=%d\n", p.DirectionCounts["CW"], p.DirectionCounts["CCW"])
	}

	lengths := make([]int, 0, len(r.NGrams.TopNGrams))
	for n := range r.NGrams.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	if len(lengths) == 0 {
		fmt.Fprintln(out, "No repeated sequences")
		return
	}
	fmt.Fprintln(out, "Repeated sequences:")
	for _, n := range lengths {
		for _, ng := range r.NGrams.TopNGrams[n] {
			fmt.Fprintf(out, "  %-24s x%d\n", strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
}
