package colorcube

import (
	"fmt"
	"strings"
)

// Move is a single quarter turn of one face.
type Move struct {
	Face      Face      // Which face to turn
	Direction Direction // Which way to turn it
}

// Notation returns the standard notation for this move.
// Examples: F, F', U, U'
func (m Move) Notation() string {
	if m.Direction == CounterClockwise {
		return m.Face.String() + "'"
	}
	return m.Face.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Direction: m.Direction.Opposite()}
}

// IsInverseOf reports whether m immediately undoes other.
func (m Move) IsInverseOf(other Move) bool {
	return m.Face == other.Face && m.Direction == other.Direction.Opposite()
}

// ParseMove parses a notation string such as "F" or "R'".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = Up
	case 'L', 'l':
		face = Left
	case 'F', 'f':
		face = Front
	case 'R', 'r':
		face = Right
	case 'D', 'd':
		face = Down
	case 'B', 'b':
		face = Back
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	dir := Clockwise
	switch s[1:] {
	case "":
	case "'", "`":
		dir = CounterClockwise
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Direction: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "F R' U"
// Unlike single-move parsing, an invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
