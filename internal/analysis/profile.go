package analysis

import (
	colorcube "github.com/kenzierocks/color-cube-solver"
)

// MovementProfile analyzes the movement patterns in a move sequence.
type MovementProfile struct {
	TotalMoves      int            `json:"total_moves"`
	FaceCounts      map[string]int `json:"face_counts"`
	DirectionCounts map[string]int `json:"direction_counts"`
	MostUsedFace    string         `json:"most_used_face"`
	FaceSequences   map[string]int `json:"face_sequences"` // e.g. "RU" -> count
	UndoPairs       int            `json:"undo_pairs"`     // moves followed by their inverse
	QuadRuns        int            `json:"quad_runs"`      // four equal moves in a row
	NetMoves        int            `json:"net_moves"`      // length after cancelling
}

// AnalyzeMovementProfile analyzes which faces and directions are most used
// and how many moves cancel out.
func AnalyzeMovementProfile(moves []colorcube.Move) *MovementProfile {
	profile := &MovementProfile{
		TotalMoves:      len(moves),
		FaceCounts:      make(map[string]int),
		DirectionCounts: make(map[string]int),
		FaceSequences:   make(map[string]int),
	}

	run := 0
	for i, m := range moves {
		profile.FaceCounts[m.Face.String()]++
		profile.DirectionCounts[m.Direction.String()]++

		if i > 0 {
			prev := moves[i-1]
			profile.FaceSequences[prev.Face.String()+m.Face.String()]++
			if m.IsInverseOf(prev) {
				profile.UndoPairs++
			}
			if m == prev {
				run++
			} else {
				run = 1
			}
		} else {
			run = 1
		}
		if run == 4 {
			profile.QuadRuns++
			run = 0
		}
	}

	maxFaceCount := 0
	for _, face := range colorcube.Faces {
		if count := profile.FaceCounts[face.String()]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face.String()
		}
	}

	profile.NetMoves = len(Cancel(moves))
	return profile
}

// Cancel removes moves that undo each other: a move followed by its inverse,
// and four equal moves in a row. It works like a stack, so cancellations
// that expose further ones are applied too. The result turns the cube the
// same way as moves.
func Cancel(moves []colorcube.Move) []colorcube.Move {
	out := make([]colorcube.Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		if n > 0 && m.IsInverseOf(out[n-1]) {
			out = out[:n-1]
			continue
		}
		if n >= 3 && out[n-1] == m && out[n-2] == m && out[n-3] == m {
			out = out[:n-3]
			continue
		}
		out = append(out, m)
	}
	return out
}
