package colorcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{F, "F"},
		{FPrime, "F'"},
		{U, "U"},
		{BPrime, "B'"},
		{Move{Face: Left, Direction: CounterClockwise}, "L'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.move.Notation())
		assert.Equal(t, tt.want, tt.move.String())
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"F", F},
		{"f", F},
		{"R'", RPrime},
		{"d`", DPrime},
		{" U ", U},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "F2", "R''", "Up"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, in)
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	const text = "F R' U B' L D"
	moves, err := ParseMoves(text)
	require.NoError(t, err)
	assert.Equal(t, []Move{F, RPrime, U, BPrime, L, D}, moves)
	assert.Equal(t, text, FormatMoves(moves))

	_, err = ParseMoves("F Q")
	assert.ErrorIs(t, err, ErrInvalidNotation)

	assert.Equal(t, "", FormatMoves(nil))
}

func TestMoveInverse(t *testing.T) {
	for _, m := range AllMoves {
		inv := m.Inverse()
		assert.Equal(t, m.Face, inv.Face)
		assert.NotEqual(t, m.Direction, inv.Direction)
		assert.True(t, inv.IsInverseOf(m))
		assert.True(t, m.IsInverseOf(inv))
		assert.False(t, m.IsInverseOf(m))
		assert.Equal(t, m, inv.Inverse())
	}
}

func TestInvertMovesUndoesSequence(t *testing.T) {
	start := numberedCube(t, 5)
	moves := []Move{F, R, UPrime, B, B, LPrime, D}
	assert.True(t, start.Apply(moves...).Apply(InvertMoves(moves)...).Equal(start))
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, CounterClockwise, Clockwise.Opposite())
	assert.Equal(t, Clockwise, CounterClockwise.Opposite())
}

func TestFaceString(t *testing.T) {
	var got string
	for _, f := range Faces {
		got += f.String()
		assert.True(t, f.Valid())
	}
	assert.Equal(t, "ULFRDB", got)
	assert.False(t, Face(6).Valid())
	assert.Equal(t, "?", Face(6).String())
}
