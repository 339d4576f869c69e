package display

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorcube "github.com/kenzierocks/color-cube-solver"
)

func newModel(t *testing.T, opts Options) *Model {
	t.Helper()
	start, err := colorcube.NewSixCube(3)
	require.NoError(t, err)
	return New(start, opts)
}

func frame(m *Model) tea.Cmd {
	_, cmd := m.Update(frameMsg(time.Now()))
	return cmd
}

func TestMoveCommitsAfterMoveSpeedFrames(t *testing.T) {
	moves := make(chan colorcube.Move, 1)
	m := newModel(t, Options{MoveSpeed: 3, Moves: moves})
	moves <- colorcube.F

	frame(m)
	frame(m)
	assert.Equal(t, 0, m.Applied())
	require.NotNil(t, m.current)
	assert.Contains(t, m.View(), "Turning: ")

	frame(m)
	assert.Equal(t, 1, m.Applied())
	assert.Nil(t, m.current)

	start, err := colorcube.NewSixCube(3)
	require.NoError(t, err)
	assert.True(t, start.Rotate(colorcube.Front, colorcube.Clockwise).Equal(m.Cube()))
}

func TestMovesAreShownInOrder(t *testing.T) {
	seq := []colorcube.Move{colorcube.F, colorcube.R, colorcube.UPrime, colorcube.B}
	moves := make(chan colorcube.Move, len(seq))
	for _, mv := range seq {
		moves <- mv
	}
	close(moves)

	m := newModel(t, Options{MoveSpeed: 1, Moves: moves})
	for i := 0; i < len(seq); i++ {
		frame(m)
	}
	assert.Equal(t, len(seq), m.Applied())
	assert.False(t, m.Done())

	frame(m)
	assert.True(t, m.Done())
	assert.Equal(t, seq, m.tracker.Moves())
}

func TestIdleFrameKeepsTicking(t *testing.T) {
	m := newModel(t, Options{MoveSpeed: 2, Moves: make(chan colorcube.Move)})
	assert.NotNil(t, frame(m))
	assert.Equal(t, 0, m.Applied())
	assert.False(t, m.Done())
}

func TestQuitWhenDone(t *testing.T) {
	moves := make(chan colorcube.Move)
	close(moves)
	m := newModel(t, Options{MoveSpeed: 2, Moves: moves, QuitWhenDone: true})

	cmd := frame(m)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSolvedIsReported(t *testing.T) {
	moves := make(chan colorcube.Move, 2)
	moves <- colorcube.R
	moves <- colorcube.RPrime
	m := newModel(t, Options{MoveSpeed: 1, Moves: moves})

	frame(m)
	assert.Equal(t, -1, m.solvedAt)
	frame(m)
	assert.Equal(t, 2, m.solvedAt)
	assert.Contains(t, m.View(), "SOLVED after 2 moves")
}

func TestClicksAreForwarded(t *testing.T) {
	clicks := make(chan struct{}, 1)
	m := newModel(t, Options{Clicks: clicks})

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Len(t, clicks, 1)

	// Buffer full: the click is dropped rather than blocking the UI.
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Len(t, clicks, 1)
	assert.Equal(t, 2, m.clicks)
	assert.Equal(t, 1, m.dropped)

	<-clicks
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, clicks, 1)

	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, m.clicks)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newModel(t, Options{})
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

func TestViewShowsEveryFacelet(t *testing.T) {
	m := newModel(t, Options{Title: "Scramble"})
	view := m.View()
	assert.Contains(t, view, "Scramble")
	assert.Equal(t, 3*3*colorcube.FaceCount, strings.Count(view, cellGlyph))
}

func TestTurningCells(t *testing.T) {
	cells := turningCells(colorcube.Front, 3)
	assert.Len(t, cells, 9+12)
	assert.True(t, cells[colorcube.Index(colorcube.Front, 1, 1, 3)])
	for _, i := range colorcube.OuterRingIndices(colorcube.Front, 3) {
		assert.True(t, cells[i])
	}
	assert.False(t, cells[colorcube.Index(colorcube.Back, 1, 1, 3)])
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[#--]", progressBar(1, 3))
	assert.Equal(t, "[##]", progressBar(5, 2))
	assert.Equal(t, "[-]", progressBar(0, 0))
}
