package colorcube

import (
	"iter"
	"math/rand/v2"
)

// Cube is an N×N×N cube whose facelets hold values of type T.
//
// A Cube never changes after construction: Rotate, Apply and Scramble all
// return a new Cube. Each face is laid out with x growing to the right and
// y growing downward, as seen looking straight at the face.
type Cube[T comparable] struct {
	data *Storage[T]
}

// New creates a cube from a snapshot of storage. Later changes to storage
// do not affect the cube.
func New[T comparable](storage *Storage[T]) *Cube[T] {
	return &Cube[T]{data: storage.Duplicate()}
}

// wrap takes ownership of storage without copying.
func wrap[T comparable](storage *Storage[T]) *Cube[T] {
	return &Cube[T]{data: storage}
}

// Size returns the edge length of the cube.
func (c *Cube[T]) Size() int {
	return c.data.size
}

// Get returns the facelet at (x, y) on face. Coordinates outside
// [0, Size()) panic.
func (c *Cube[T]) Get(face Face, x, y int) T {
	return c.data.Get(face, x, y)
}

// FacePoints yields every (x, y) of a face, row by row.
func (c *Cube[T]) FacePoints() iter.Seq2[int, int] {
	return FacePoints(c.data.size)
}

// Storage returns a copy of the cube's facelets.
func (c *Cube[T]) Storage() *Storage[T] {
	return c.data.Duplicate()
}

// Rotate returns the cube after a quarter turn of face in direction.
func (c *Cube[T]) Rotate(face Face, direction Direction) *Cube[T] {
	next := c.data.Duplicate()
	next.rotate(face, direction, nil)
	return wrap(next)
}

// Apply returns the cube after applying moves in order.
func (c *Cube[T]) Apply(moves ...Move) *Cube[T] {
	next := c.data.Duplicate()
	var buf []T
	for _, m := range moves {
		buf = next.rotate(m.Face, m.Direction, buf)
	}
	return wrap(next)
}

// Scramble returns the cube after a random run of rotations drawn from rng,
// together with the moves that were applied. By default the run length is
// uniform in [500, 1000).
func (c *Cube[T]) Scramble(rng *rand.Rand, opts ...ScrambleOption) (*Cube[T], []Move, error) {
	s, err := NewScrambler(rng, opts...)
	if err != nil {
		return nil, nil, err
	}
	moves := s.Moves()
	return c.Apply(moves...), moves, nil
}

// Equal reports whether both cubes have the same size and facelets.
func (c *Cube[T]) Equal(other *Cube[T]) bool {
	if other == nil {
		return false
	}
	return c.data.Equal(other.data)
}

// Solved reports whether every face shows a single value.
func (c *Cube[T]) Solved() bool {
	for _, face := range Faces {
		first := c.data.Get(face, 0, 0)
		for x, y := range c.FacePoints() {
			if c.data.Get(face, x, y) != first {
				return false
			}
		}
	}
	return true
}
