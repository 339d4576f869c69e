package colorcube

import (
	"fmt"
	"math/rand/v2"
)

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Scrambler draws a random sequence of moves. The sequence length is fixed
// when the scrambler is created.
type Scrambler struct {
	rng       *rand.Rand
	count     int
	avoidUndo bool

	drawn   int
	last    Move
	hasLast bool
}

// NewScrambler creates a scrambler drawing from rng.
func NewScrambler(rng *rand.Rand, opts ...ScrambleOption) (*Scrambler, error) {
	cfg := defaultScrambleConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var count int
	if cfg.fixedCount {
		if cfg.exactCount < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCount, cfg.exactCount)
		}
		count = cfg.exactCount
	} else {
		if cfg.minCount < 0 || cfg.maxCount <= cfg.minCount {
			return nil, fmt.Errorf("%w: range [%d, %d)", ErrInvalidCount, cfg.minCount, cfg.maxCount)
		}
		count = cfg.minCount + rng.IntN(cfg.maxCount-cfg.minCount)
	}

	return &Scrambler{rng: rng, count: count, avoidUndo: cfg.avoidUndo}, nil
}

// Count returns the total number of moves this scrambler produces.
func (s *Scrambler) Count() int {
	return s.count
}

// Remaining returns how many moves are left to draw.
func (s *Scrambler) Remaining() int {
	return s.count - s.drawn
}

// Next draws the next move. ok is false once Count moves were drawn.
func (s *Scrambler) Next() (m Move, ok bool) {
	if s.drawn >= s.count {
		return Move{}, false
	}
	for {
		m = Move{
			Face:      Faces[s.rng.IntN(FaceCount)],
			Direction: Directions[s.rng.IntN(len(Directions))],
		}
		if !s.avoidUndo || !s.hasLast || !m.IsInverseOf(s.last) {
			break
		}
	}
	s.last, s.hasLast = m, true
	s.drawn++
	return m, true
}

// Moves draws all remaining moves.
func (s *Scrambler) Moves() []Move {
	moves := make([]Move, 0, s.Remaining())
	for {
		m, ok := s.Next()
		if !ok {
			return moves
		}
		moves = append(moves, m)
	}
}
