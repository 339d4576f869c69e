package colorcube

// Tracker wraps a Cube and records the moves applied to it.
type Tracker[T comparable] struct {
	initial  *Cube[T]
	cube     *Cube[T]
	moves    []Move
	onSolved func(moveCount int)
}

// NewTracker creates a tracker starting from initial.
func NewTracker[T comparable](initial *Cube[T]) *Tracker[T] {
	return &Tracker[T]{
		initial: initial,
		cube:    initial,
	}
}

// SetSolvedCallback sets a callback that fires when a move leaves the cube
// solved.
func (t *Tracker[T]) SetSolvedCallback(cb func(moveCount int)) {
	t.onSolved = cb
}

// Reset returns the tracker to its initial cube and clears the history.
func (t *Tracker[T]) Reset() {
	t.cube = t.initial
	t.moves = nil
}

// ApplyMove applies a move and checks whether the cube became solved.
func (t *Tracker[T]) ApplyMove(m Move) {
	t.cube = t.cube.Rotate(m.Face, m.Direction)
	t.moves = append(t.moves, m)
	if t.onSolved != nil && t.cube.Solved() {
		t.onSolved(len(t.moves))
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker[T]) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Cube returns the current cube.
func (t *Tracker[T]) Cube() *Cube[T] {
	return t.cube
}

// Moves returns a copy of the applied moves.
func (t *Tracker[T]) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// MoveCount returns the number of applied moves.
func (t *Tracker[T]) MoveCount() int {
	return len(t.moves)
}

// IsSolved returns true if the current cube is solved.
func (t *Tracker[T]) IsSolved() bool {
	return t.cube.Solved()
}
