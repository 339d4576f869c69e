// Package colorcube models an N×N×N cube whose faces are covered in
// facelets, and the quarter turns that permute them.
//
// # Storage
//
// The facelets of all six faces live in one flat slice. The facelet at
// (x, y) on a face is stored at
//
//	face + x*6 + y*6*size
//
// so Index and Locate convert between the two forms. A turn of a face moves
// two kinds of rings: the outer ring (the border rows and columns of the
// four neighboring faces, see OuterRingIndices) and the face's own
// concentric rings (see InnerRingIndices and FaceRings).
//
// # Quick Start
//
//	cube, err := colorcube.NewSixCube(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Cubes are values: every turn returns a new cube.
//	turned := cube.Rotate(colorcube.Front, colorcube.Clockwise)
//	back := turned.Rotate(colorcube.Front, colorcube.CounterClockwise)
//	fmt.Println(back.Equal(cube)) // true
//
//	// Or from notation
//	moves, _ := colorcube.ParseMoves("F R' U")
//	fmt.Print(colorcube.FormatNet(cube.Apply(moves...), colorcube.SixColor.String))
//
// # Scrambling
//
//	rng := colorcube.NewRand(42)
//	scrambled, moves, err := cube.Scramble(rng, colorcube.WithUndoAvoidance(true))
//
// The same seed always yields the same moves and the same final cube.
package colorcube
