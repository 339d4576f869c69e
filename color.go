package colorcube

import (
	"fmt"
	"strings"
)

// SixColor is the facelet value used by the viewer: one color per face.
type SixColor byte

const (
	Color1 SixColor = 0 // Up face when solved
	Color2 SixColor = 1 // Left face when solved
	Color3 SixColor = 2 // Front face when solved
	Color4 SixColor = 3 // Right face when solved
	Color5 SixColor = 4 // Down face when solved
	Color6 SixColor = 5 // Back face when solved
)

// SixColors lists every color in order.
var SixColors = [FaceCount]SixColor{Color1, Color2, Color3, Color4, Color5, Color6}

var sixColorHex = [FaceCount]string{
	"#884411",
	"#1DD372",
	"#776655",
	"#5D3F7F",
	"#E7B718",
	"#79F2D6",
}

// Hex returns the display color as #RRGGBB.
func (c SixColor) Hex() string {
	if int(c) >= len(sixColorHex) {
		return "#000000"
	}
	return sixColorHex[c]
}

// Code returns the single-digit code ('1'..'6') used in persisted state.
func (c SixColor) Code() byte {
	return '1' + byte(c)
}

func (c SixColor) String() string {
	if int(c) >= FaceCount {
		return "?"
	}
	return string(c.Code())
}

// SixCube is a cube of six colors.
type SixCube = Cube[SixColor]

// NewSixCube returns a solved cube of the given size with each face painted
// in the color matching its index.
func NewSixCube(size int) (*SixCube, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	data := make([]SixColor, size*size*FaceCount)
	for i := range data {
		face, _, _ := Locate(i, size)
		data[i] = SixColors[face]
	}
	return wrap(&Storage[SixColor]{size: size, data: data}), nil
}

// EncodeSixCube returns the facelets as one digit per cell, in storage order.
func EncodeSixCube(c *SixCube) string {
	var b strings.Builder
	b.Grow(c.data.Len())
	for _, v := range c.data.data {
		b.WriteByte(v.Code())
	}
	return b.String()
}

// DecodeSixCube parses the output of EncodeSixCube.
func DecodeSixCube(size int, s string) (*SixCube, error) {
	data := make([]SixColor, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '1' || ch > '6' {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidColor, ch, i)
		}
		data[i] = SixColor(ch - '1')
	}
	storage, err := NewStorage(size, data)
	if err != nil {
		return nil, err
	}
	return wrap(storage), nil
}
