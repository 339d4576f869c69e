package colorcube

// Face identifies one of the six faces of the cube.
//
// The numeric value is part of the storage index formula, so the order of
// these constants must never change.
type Face int

const (
	Up    Face = 0
	Left  Face = 1
	Front Face = 2
	Right Face = 3
	Down  Face = 4
	Back  Face = 5
)

// FaceCount is the number of faces on a cube.
const FaceCount = 6

// Faces lists every face in index order.
var Faces = [FaceCount]Face{Up, Left, Front, Right, Down, Back}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Down:
		return "D"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Up && f <= Back
}

// Direction is the direction of a face rotation, as seen looking at the face.
type Direction int

const (
	Clockwise        Direction = 0
	CounterClockwise Direction = 1
)

// Directions lists both rotation directions.
var Directions = [2]Direction{Clockwise, CounterClockwise}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "?"
	}
}
