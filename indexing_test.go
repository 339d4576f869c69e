package colorcube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = []int{1, 3, 5, 7}

func TestIndexIsBijection(t *testing.T) {
	for _, size := range testSizes {
		total := size * size * FaceCount
		seen := make(map[int]bool, total)
		for _, face := range Faces {
			for x, y := range FacePoints(size) {
				idx := Index(face, x, y, size)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, total)
				require.False(t, seen[idx], "size %d: index %d produced twice", size, idx)
				seen[idx] = true

				gotFace, gotX, gotY := Locate(idx, size)
				assert.Equal(t, face, gotFace)
				assert.Equal(t, x, gotX)
				assert.Equal(t, y, gotY)
			}
		}
		assert.Len(t, seen, total, "size %d", size)
	}
}

func TestIndexFormula(t *testing.T) {
	assert.Equal(t, 0, Index(Up, 0, 0, 3))
	assert.Equal(t, 2, Index(Front, 0, 0, 3))
	assert.Equal(t, 5+2*6, Index(Back, 2, 0, 3))
	assert.Equal(t, 3+1*6+2*6*3, Index(Right, 1, 2, 3))
}

func TestOuterRingIndices_LengthAndUnique(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		for _, face := range Faces {
			ring := OuterRingIndices(face, size)
			require.Len(t, ring, 4*size, "%v size %d", face, size)

			seen := make(map[int]bool)
			for _, idx := range ring {
				assert.False(t, seen[idx], "%v size %d: duplicate index %d", face, size, idx)
				seen[idx] = true

				owner, _, _ := Locate(idx, size)
				assert.NotEqual(t, face, owner, "%v ring must not touch its own face", face)
			}
		}
	}
}

func TestOuterRingIndices_Front(t *testing.T) {
	const size = 3
	want := []int{
		// Up bottom row
		Index(Up, 0, 2, size), Index(Up, 1, 2, size), Index(Up, 2, 2, size),
		// Right left column
		Index(Right, 0, 0, size), Index(Right, 0, 1, size), Index(Right, 0, 2, size),
		// Down top row
		Index(Down, 0, 0, size), Index(Down, 1, 0, size), Index(Down, 2, 0, size),
		// Left right column
		Index(Left, 2, 0, size), Index(Left, 2, 1, size), Index(Left, 2, 2, size),
	}
	assert.Equal(t, want, OuterRingIndices(Front, size))
}

func TestOuterRingIndices_ReversedSegments(t *testing.T) {
	const size = 3

	right := OuterRingIndices(Right, size)
	// Up right column read bottom to top.
	assert.Equal(t, Index(Up, 2, 2, size), right[0])
	assert.Equal(t, Index(Up, 2, 0, size), right[2])
	// Front right column closes the ring, also bottom to top.
	assert.Equal(t, Index(Front, 2, 0, size), right[11])

	up := OuterRingIndices(Up, size)
	// Back bottom row forward, then Right top row backward.
	assert.Equal(t, Index(Back, 0, 2, size), up[0])
	assert.Equal(t, Index(Right, 2, 0, size), up[3])
	assert.Equal(t, Index(Left, 0, 0, size), up[11])

	down := OuterRingIndices(Down, size)
	assert.Equal(t, Index(Back, 2, 0, size), down[6])
	assert.Equal(t, Index(Back, 0, 0, size), down[8])

	back := OuterRingIndices(Back, size)
	assert.Equal(t, Index(Down, 0, 2, size), back[0])
	assert.Equal(t, Index(Right, 2, 2, size), back[3])
	assert.Equal(t, Index(Up, 2, 0, size), back[6])
	assert.Equal(t, Index(Left, 0, 2, size), back[11])
}

func TestInnerRingIndices(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		for _, face := range Faces {
			ring := InnerRingIndices(face, size)
			require.Len(t, ring, 4*size-4, "%v size %d", face, size)

			seen := make(map[int]bool)
			for _, idx := range ring {
				assert.False(t, seen[idx], "duplicate index %d", idx)
				seen[idx] = true

				owner, x, y := Locate(idx, size)
				assert.Equal(t, face, owner)
				onBorder := x == 0 || y == 0 || x == size-1 || y == size-1
				assert.True(t, onBorder, "(%d,%d) is not on the border", x, y)
			}
		}
	}
}

func TestInnerRingIndices_Order(t *testing.T) {
	const size = 3
	want := []int{
		Index(Front, 0, 0, size), Index(Front, 1, 0, size), Index(Front, 2, 0, size),
		Index(Front, 2, 1, size), Index(Front, 2, 2, size),
		Index(Front, 1, 2, size), Index(Front, 0, 2, size),
		Index(Front, 0, 1, size),
	}
	assert.Equal(t, want, InnerRingIndices(Front, size))
}

func TestInnerRingIndices_SizeOne(t *testing.T) {
	assert.Equal(t, []int{Index(Left, 0, 0, 1)}, InnerRingIndices(Left, 1))
}

func TestFaceRingsCoverFace(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		rings := FaceRings(Back, size)
		require.Len(t, rings, size/2)
		assert.Equal(t, InnerRingIndices(Back, size), rings[0])

		seen := make(map[int]int)
		for d, ring := range rings {
			side := size - 2*d
			assert.Len(t, ring, 4*side-4, "ring %d", d)
			for _, idx := range ring {
				seen[idx]++
			}
		}
		center := Index(Back, size/2, size/2, size)
		assert.Zero(t, seen[center], "center must not move")
		seen[center]++

		assert.Len(t, seen, size*size)
		for idx, n := range seen {
			assert.Equal(t, 1, n, "index %d covered %d times", idx, n)
		}
	}
}

func TestRingsAreFreshSlices(t *testing.T) {
	a := OuterRingIndices(Front, 3)
	a[0] = -1
	b := OuterRingIndices(Front, 3)
	assert.NotEqual(t, -1, b[0])
}
