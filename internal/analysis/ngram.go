// Package analysis computes statistics over recorded move sequences.
package analysis

import (
	"sort"

	colorcube "github.com/kenzierocks/color-cube-solver"
)

// maxOccurrences caps how many sample positions are kept per n-gram.
const maxOccurrences = 10

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	RunID      string `json:"run_id,omitempty"`
	StartIndex int    `json:"start_index"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// Token packs a move into a small integer: face*2 + direction.
func Token(m colorcube.Move) uint8 {
	return uint8(m.Face)*2 + uint8(m.Direction)
}

// MoveFromToken is the inverse of Token.
func MoveFromToken(t uint8) colorcube.Move {
	return colorcube.Move{Face: colorcube.Face(t / 2), Direction: colorcube.Direction(t % 2)}
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	first       int
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in [minN, maxN].
// Only sequences seen at least twice are reported. Ties go to the sequence
// that appears first.
func MineNGrams(moves []colorcube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	if minN < 1 || topK < 1 || len(moves) < minN {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = Token(m)
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(tokens []uint8, n, topK int) []NGram {
	// Collisions chain within a bucket so distinct sequences are never merged.
	buckets := make(map[uint64][]*ngramEntry)
	var entries []*ngramEntry
	rh := NewRollingHash(n)

	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := rh.Window()
		hash := rh.Hash()

		var entry *ngramEntry
		for _, e := range buckets[hash] {
			if slicesEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window, first: start}
			buckets[hash] = append(buckets[hash], entry)
			entries = append(entries, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, NGramOccurrence{StartIndex: start})
		}
	}

	repeated := entries[:0]
	for _, e := range entries {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{
			N:           n,
			Sequence:    sequenceOf(e.tokens),
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

// MineNGramsAcrossRuns merges per-run reports, keyed by run ID, into one.
func MineNGramsAcrossRuns(runNGrams map[string]*NGramReport, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	if topK < 1 {
		return report
	}

	// Visit runs in a fixed order so sample occurrences are stable.
	runIDs := make([]string, 0, len(runNGrams))
	for id := range runNGrams {
		runIDs = append(runIDs, id)
	}
	sort.Strings(runIDs)

	lengths := make(map[int]bool)
	for _, r := range runNGrams {
		for n := range r.TopNGrams {
			lengths[n] = true
		}
	}

	for n := range lengths {
		aggregated := make(map[string]*NGram)
		var order []string

		for _, runID := range runIDs {
			for _, ng := range runNGrams[runID].TopNGrams[n] {
				key := ngramKey(ng.Tokens)
				existing, ok := aggregated[key]
				if !ok {
					existing = &NGram{
						N:           ng.N,
						Sequence:    ng.Sequence,
						Tokens:      ng.Tokens,
						Occurrences: make([]NGramOccurrence, 0, maxOccurrences),
					}
					aggregated[key] = existing
					order = append(order, key)
				}
				existing.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(existing.Occurrences) < maxOccurrences {
						occ.RunID = runID
						existing.Occurrences = append(existing.Occurrences, occ)
					}
				}
			}
		}

		ngrams := make([]NGram, 0, len(order))
		for _, key := range order {
			ngrams = append(ngrams, *aggregated[key])
		}
		sort.SliceStable(ngrams, func(i, j int) bool {
			return ngrams[i].Count > ngrams[j].Count
		})
		if len(ngrams) > topK {
			ngrams = ngrams[:topK]
		}
		if len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func sequenceOf(tokens []uint8) []string {
	seq := make([]string, len(tokens))
	for i, t := range tokens {
		seq[i] = MoveFromToken(t).Notation()
	}
	return seq
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ngramKey creates a string key for an n-gram token sequence.
func ngramKey(tokens []uint8) string {
	result := make([]byte, len(tokens))
	for i, t := range tokens {
		result[i] = t + 'A'
	}
	return string(result)
}
