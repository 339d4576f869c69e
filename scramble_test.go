package colorcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScramblerDefaultRange(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		s, err := NewScrambler(NewRand(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.Count(), DefaultMinScramble)
		assert.Less(t, s.Count(), DefaultMaxScramble)
	}
}

func TestScramblerAvoidsUndo(t *testing.T) {
	s, err := NewScrambler(NewRand(3), WithCount(5000), WithUndoAvoidance(true))
	require.NoError(t, err)

	moves := s.Moves()
	require.Len(t, moves, 5000)
	for i := 1; i < len(moves); i++ {
		assert.False(t, moves[i].IsInverseOf(moves[i-1]), "move %d undoes move %d", i, i-1)
	}
}

func TestScramblerWithoutAvoidanceAllowsUndo(t *testing.T) {
	s, err := NewScrambler(NewRand(3), WithCount(5000))
	require.NoError(t, err)

	moves := s.Moves()
	undos := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].IsInverseOf(moves[i-1]) {
			undos++
		}
	}
	// One pick in twelve is an undo; 5000 draws without one would be absurd.
	assert.Positive(t, undos)
}

func TestScramblerNext(t *testing.T) {
	s, err := NewScrambler(NewRand(11), WithCount(3))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 3-i, s.Remaining())
		m, ok := s.Next()
		require.True(t, ok)
		assert.True(t, m.Face.Valid())
	}
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Zero(t, s.Remaining())
	assert.Empty(t, s.Moves())
}

func TestScramblerCoversAllMoves(t *testing.T) {
	s, err := NewScrambler(NewRand(5), WithCount(600))
	require.NoError(t, err)

	seen := make(map[Move]bool)
	for _, m := range s.Moves() {
		seen[m] = true
	}
	assert.Len(t, seen, len(AllMoves))
}
