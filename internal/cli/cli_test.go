package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorcube "github.com/kenzierocks/color-cube-solver"
	"github.com/kenzierocks/color-cube-solver/internal/storage"
)

// testEnv isolates HOME so the state file and default paths stay in a temp dir.
func testEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, "runs.db")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func scramble(t *testing.T, dbPath string, extra ...string) string {
	t.Helper()
	args := append([]string{"scramble", "--db", dbPath, "--scramble-times", "25", "--seed", "11"}, extra...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	return out
}

func lastRunID(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	runs, err := storage.NewRunRepository(db).List(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	return runs[0].RunID
}

func TestScrambleCommand(t *testing.T) {
	dbPath := testEnv(t)
	out := scramble(t, dbPath)

	assert.Contains(t, out, "Seed: 11")
	assert.Contains(t, out, "Moves (25):")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	moves, err := colorcube.ParseMoves(lines[3])
	require.NoError(t, err)
	assert.Len(t, moves, 25)

	start, err := colorcube.NewSixCube(3)
	require.NoError(t, err)
	assert.Contains(t, out, colorcube.FormatNet(start.Apply(moves...), colorcube.SixColor.String))
}

func TestScrambleCommandIsReproducible(t *testing.T) {
	dbPath := testEnv(t)
	first := scramble(t, dbPath, "--no-net")
	second := scramble(t, dbPath, "--no-net")

	strip := func(s string) string { return s[strings.Index(s, "Seed:"):] }
	assert.Equal(t, strip(first), strip(second))
}

func TestScrambleCommandRejectsEvenSize(t *testing.T) {
	dbPath := testEnv(t)
	_, err := execute(t, "scramble", "--db", dbPath, "--size", "4")
	assert.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	dbPath := testEnv(t)

	out, err := execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet")

	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	out, err = execute(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, storage.KindHeadless)
	assert.Contains(t, out, "finished")

	out, err = execute(t, "history", "--db", dbPath, "--limit", "0")
	assert.Error(t, err)
	assert.NotContains(t, out, "No runs recorded yet")
}

func TestReplayVerifiesLastRun(t *testing.T) {
	dbPath := testEnv(t)
	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	out, err := execute(t, "replay", "--verify-only")
	require.NoError(t, err, "state file should point at the last run and its database")
	assert.Contains(t, out, "Run "+id+": 25 moves, final state verified")
}

func TestReplayDetectsTampering(t *testing.T) {
	dbPath := testEnv(t)
	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	db, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM moves WHERE run_id = ? AND move_index = 0`, id)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = execute(t, "replay", id, "--db", dbPath, "--verify-only")
	assert.ErrorIs(t, err, ErrStateMismatch)
}

func TestReplayUnknownRun(t *testing.T) {
	dbPath := testEnv(t)
	_, err := execute(t, "replay", "nope", "--db", dbPath, "--verify-only")
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestExportCommand(t *testing.T) {
	dbPath := testEnv(t)
	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	out, err := execute(t, "export", id, "--db", dbPath)
	require.NoError(t, err)
	moves, err := colorcube.ParseMoves(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Len(t, moves, 25)

	file := filepath.Join(t.TempDir(), "out", "run.json")
	out, err = execute(t, "export", "--db", dbPath, "--format", "json", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 25 moves")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var doc runJSON
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, id, doc.RunID)
	assert.Equal(t, uint64(11), doc.Seed)
	require.Len(t, doc.Moves, 25)
	assert.Equal(t, moves[0].Notation(), doc.Moves[0].Notation)

	_, err = execute(t, "export", id, "--db", dbPath, "--format", "xml")
	assert.Error(t, err)
}

func TestStatusCommand(t *testing.T) {
	dbPath := testEnv(t)
	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	out, err := execute(t, "status", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Database: "+dbPath)
	assert.Contains(t, out, "Total runs: 1")
	assert.Contains(t, out, "Last run: "+id)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestStatsCommand(t *testing.T) {
	dbPath := testEnv(t)
	scramble(t, dbPath)
	id := lastRunID(t, dbPath)

	out, err := execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Run: "+id)
	assert.Contains(t, out, "Moves: 25")

	out, err = execute(t, "stats", "--db", dbPath, "--runs", "5", "--json")
	require.NoError(t, err)
	var report statsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Runs)
	assert.Nil(t, report.Profile)

	_, err = execute(t, "stats", "--db", dbPath, "--min", "3", "--max", "2")
	assert.Error(t, err)

	_, err = execute(t, "stats", "--db", dbPath, "--top", "-1")
	assert.Error(t, err)
	_, err = execute(t, "stats", "--db", dbPath, "--runs", "5", "--top", "0")
	assert.Error(t, err)
}
