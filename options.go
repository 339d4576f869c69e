package colorcube

// ScrambleOption configures a scramble.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	minCount   int
	maxCount   int // exclusive
	avoidUndo  bool
	fixedCount bool
	exactCount int
}

// Default scramble length bounds: [500, 1000).
const (
	DefaultMinScramble = 500
	DefaultMaxScramble = 1000
)

func defaultScrambleConfig() *scrambleConfig {
	return &scrambleConfig{
		minCount:  DefaultMinScramble,
		maxCount:  DefaultMaxScramble,
		avoidUndo: false,
	}
}

// WithCount performs exactly n rotations instead of a random count.
func WithCount(n int) ScrambleOption {
	return func(c *scrambleConfig) {
		c.fixedCount = true
		c.exactCount = n
	}
}

// WithCountRange draws the rotation count uniformly from [min, max).
func WithCountRange(min, max int) ScrambleOption {
	return func(c *scrambleConfig) {
		c.fixedCount = false
		c.minCount = min
		c.maxCount = max
	}
}

// WithUndoAvoidance rejects a move that would immediately undo the previous
// one (same face, opposite direction). Off by default.
func WithUndoAvoidance(enabled bool) ScrambleOption {
	return func(c *scrambleConfig) {
		c.avoidUndo = enabled
	}
}
