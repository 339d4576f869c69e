package colorcube

// Predefined moves for convenience.
//
// Example:
//
//	next := cube.Apply(colorcube.F, colorcube.R, colorcube.FPrime)
var (
	U      = Move{Face: Up, Direction: Clockwise}
	UPrime = Move{Face: Up, Direction: CounterClockwise}

	L      = Move{Face: Left, Direction: Clockwise}
	LPrime = Move{Face: Left, Direction: CounterClockwise}

	F      = Move{Face: Front, Direction: Clockwise}
	FPrime = Move{Face: Front, Direction: CounterClockwise}

	R      = Move{Face: Right, Direction: Clockwise}
	RPrime = Move{Face: Right, Direction: CounterClockwise}

	D      = Move{Face: Down, Direction: Clockwise}
	DPrime = Move{Face: Down, Direction: CounterClockwise}

	B      = Move{Face: Back, Direction: Clockwise}
	BPrime = Move{Face: Back, Direction: CounterClockwise}
)

// AllMoves lists the twelve quarter turns, face-major.
var AllMoves = []Move{U, UPrime, L, LPrime, F, FPrime, R, RPrime, D, DPrime, B, BPrime}
