package colorcube

// Storage layout: faces are interleaved at the lowest level, so the six
// facelets at the same (x, y) of every face are adjacent.
//
//	index = face + x*6 + y*6*size

// Index returns the storage position of facelet (x, y) on face for a cube
// of the given size.
func Index(face Face, x, y, size int) int {
	return int(face) + x*FaceCount + y*FaceCount*size
}

// Locate is the inverse of Index.
func Locate(index, size int) (face Face, x, y int) {
	face = Face(index % FaceCount)
	cell := index / FaceCount
	return face, cell % size, cell / size
}

// edge selects one border line of a face.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// segment is one border line of a neighboring face, read in ring order.
type segment struct {
	face    Face
	edge    edge
	reverse bool
}

// outerRings lists, for each rotated face, the four neighbor borders that
// wrap around it in clockwise order. Some borders must be read backwards
// because the neighbor is oriented differently from the rotated face.
var outerRings = [FaceCount][4]segment{
	Up: {
		{Back, edgeBottom, false},
		{Right, edgeTop, true},
		{Front, edgeTop, true},
		{Left, edgeTop, true},
	},
	Left: {
		{Up, edgeLeft, false},
		{Front, edgeLeft, false},
		{Down, edgeLeft, false},
		{Back, edgeLeft, false},
	},
	Front: {
		{Up, edgeBottom, false},
		{Right, edgeLeft, false},
		{Down, edgeTop, false},
		{Left, edgeRight, false},
	},
	Right: {
		{Up, edgeRight, true},
		{Back, edgeRight, true},
		{Down, edgeRight, true},
		{Front, edgeRight, true},
	},
	Down: {
		{Front, edgeBottom, false},
		{Right, edgeBottom, false},
		{Back, edgeTop, true},
		{Left, edgeBottom, false},
	},
	Back: {
		{Down, edgeBottom, false},
		{Right, edgeRight, true},
		{Up, edgeTop, true},
		{Left, edgeLeft, false},
	},
}

// line appends the indices of one border of the square [lo, hi]x[lo, hi]
// on face. Rows run left to right and columns top to bottom unless reversed.
func line(dst []int, face Face, e edge, lo, hi, size int, reverse bool) []int {
	for i := lo; i <= hi; i++ {
		k := i
		if reverse {
			k = hi - (i - lo)
		}
		var x, y int
		switch e {
		case edgeTop:
			x, y = k, lo
		case edgeBottom:
			x, y = k, hi
		case edgeLeft:
			x, y = lo, k
		case edgeRight:
			x, y = hi, k
		}
		dst = append(dst, Index(face, x, y, size))
	}
	return dst
}

// OuterRingIndices returns, in clockwise order, the indices of the facelets
// on the four neighboring faces that move with a rotation of face.
// The result always has 4*size entries and no duplicates.
func OuterRingIndices(face Face, size int) []int {
	ring := make([]int, 0, 4*size)
	for _, s := range outerRings[face] {
		ring = line(ring, s.face, s.edge, 0, size-1, size, s.reverse)
	}
	return ring
}

// InnerRingIndices returns the border facelets of face itself in clockwise
// order, starting at the top-left corner. Each corner appears once.
func InnerRingIndices(face Face, size int) []int {
	return squareRing(face, 0, size)
}

// FaceRings returns the concentric rings of face, from the border inward.
// The first ring equals InnerRingIndices. The center facelet of an odd
// sized face never moves and is not part of any ring.
func FaceRings(face Face, size int) [][]int {
	rings := make([][]int, 0, size/2)
	for depth := 0; size-2*depth > 1; depth++ {
		rings = append(rings, squareRing(face, depth, size))
	}
	return rings
}

// squareRing walks the border of the square inset by depth: top row, right
// column, bottom row reversed, left column reversed, dropping repeated
// corners while keeping first-seen order.
func squareRing(face Face, depth, size int) []int {
	lo, hi := depth, size-1-depth
	if hi < lo {
		return nil
	}
	walk := make([]int, 0, 4*(hi-lo+1))
	walk = line(walk, face, edgeTop, lo, hi, size, false)
	walk = line(walk, face, edgeRight, lo, hi, size, false)
	walk = line(walk, face, edgeBottom, lo, hi, size, true)
	walk = line(walk, face, edgeLeft, lo, hi, size, true)
	return distinct(walk)
}

func distinct(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := indices[:0]
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}
