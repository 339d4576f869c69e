package colorcube

import (
	"fmt"
	"iter"
)

// Storage is the flat facelet array backing a cube. It is mutable; Cube
// wraps it with value semantics.
type Storage[T comparable] struct {
	size int
	data []T
}

// NewStorage wraps data as the facelets of a size x size x size cube.
// data must hold exactly size*size*6 values and is used without copying.
func NewStorage[T comparable](size int, data []T) (*Storage[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if len(data) != size*size*FaceCount {
		return nil, fmt.Errorf("%w: data is not a %dx%dx%d array (got %d values)",
			ErrInvalidLength, size, size, FaceCount, len(data))
	}
	return &Storage[T]{size: size, data: data}, nil
}

// NewFilledStorage creates storage with every facelet set to initial.
func NewFilledStorage[T comparable](size int, initial T) (*Storage[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	data := make([]T, size*size*FaceCount)
	for i := range data {
		data[i] = initial
	}
	return &Storage[T]{size: size, data: data}, nil
}

// Size returns the edge length of the cube.
func (s *Storage[T]) Size() int {
	return s.size
}

// Len returns the number of facelets.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// Get returns the value at (x, y) on face.
func (s *Storage[T]) Get(face Face, x, y int) T {
	return s.data[Index(face, x, y, s.size)]
}

// Set stores value at (x, y) on face.
func (s *Storage[T]) Set(face Face, x, y int, value T) {
	s.data[Index(face, x, y, s.size)] = value
}

// At returns the value at a raw storage index.
func (s *Storage[T]) At(index int) T {
	return s.data[index]
}

// FacePoints yields every (x, y) of a face, row by row.
func (s *Storage[T]) FacePoints() iter.Seq2[int, int] {
	return FacePoints(s.size)
}

// Duplicate returns an independent copy.
func (s *Storage[T]) Duplicate() *Storage[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)
	return &Storage[T]{size: s.size, data: data}
}

// Equal reports whether both storages have the same size and facelets.
func (s *Storage[T]) Equal(other *Storage[T]) bool {
	if s == other {
		return true
	}
	if other == nil || s.size != other.size || len(s.data) != len(other.data) {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// rotate turns face a quarter turn in place: first the neighbor ring, then
// the face's own rings from the border inward.
func (s *Storage[T]) rotate(face Face, dir Direction, buf []T) []T {
	buf = s.rotateRing(OuterRingIndices(face, s.size), dir, s.size, buf)
	for _, ring := range FaceRings(face, s.size) {
		// A ring of n facelets has four equal sides of n/4 steps each.
		buf = s.rotateRing(ring, dir, len(ring)/4, buf)
	}
	return buf
}

// rotateRing moves every value offset slots along ring: forward for
// clockwise, backward for counter-clockwise. buf is scratch space and is
// returned, possibly grown, for reuse.
func (s *Storage[T]) rotateRing(ring []int, dir Direction, offset int, buf []T) []T {
	n := len(ring)
	if n == 0 {
		return buf
	}
	offset %= n
	if dir == CounterClockwise {
		offset = (n - offset) % n
	}
	buf = buf[:0]
	for _, idx := range ring {
		buf = append(buf, s.data[idx])
	}
	for i, v := range buf {
		s.data[ring[(i+offset)%n]] = v
	}
	return buf
}

// FacePoints yields every (x, y) of a face of the given size, y outer and
// x inner. Each call returns a fresh, restartable sequence.
func FacePoints(size int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
