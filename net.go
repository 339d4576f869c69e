package colorcube

import "strings"

// FormatNet renders the cube as an unfolded net:
//
//	      U
//	L  F  R  B
//	      D
//
// cell renders one facelet as plain text; every cell must have the same
// length.
// Cells on a row are separated by a single space.
func FormatNet[T comparable](c *Cube[T], cell func(T) string) string {
	size := c.Size()
	var b strings.Builder

	blank := ""
	if size > 0 {
		blank = strings.Repeat(" ", len(cell(c.Get(Up, 0, 0)))+1)
	}
	indent := strings.Repeat(blank, size)

	writeRow := func(face Face, y int) {
		for x := 0; x < size; x++ {
			b.WriteString(cell(c.Get(face, x, y)))
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for y := 0; y < size; y++ {
		b.WriteString(indent)
		writeRow(Up, y)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for y := 0; y < size; y++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			writeRow(face, y)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for y := 0; y < size; y++ {
		b.WriteString(indent)
		writeRow(Down, y)
		b.WriteString("\n")
	}

	return b.String()
}
