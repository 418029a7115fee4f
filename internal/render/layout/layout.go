// Package layout computes the pixel geometry of the clock wall for the vector
// surfaces: six digit blocks of 4x6 faces, with an extra margin after every
// pair of digits.
package layout

import (
	"image"
	"math"

	"github.com/oshokin/clockwall/internal/domain/glyph"
	"github.com/oshokin/clockwall/internal/domain/timedigits"
)

// DefaultFaceSize is the face diameter used by Default.
const DefaultFaceSize = 48

// Grid describes the size of the faces and the spacing between them.
type Grid struct {
	// FaceSize is the diameter of one face in pixels.
	FaceSize int
	// Gap is the space between neighbouring faces and around the wall.
	Gap int
}

// New returns a grid for the face size, with a gap of 5% of it (at least 1px).
func New(faceSize int) Grid {
	return Grid{
		FaceSize: faceSize,
		Gap:      max(1, faceSize/20),
	}
}

// Default returns the grid for DefaultFaceSize.
func Default() Grid {
	return New(DefaultFaceSize)
}

// blockWidth is the width of one digit block without outer gaps.
func (g Grid) blockWidth() int {
	return glyph.Columns*g.FaceSize + (glyph.Columns-1)*g.Gap
}

// blockHeight is the height of one digit block.
func (g Grid) blockHeight() int {
	return glyph.Rows*g.FaceSize + (glyph.Rows-1)*g.Gap
}

// pairMargin is the extra space after each pair of digits.
func (g Grid) pairMargin() int {
	return g.FaceSize
}

// blockLeft returns the x offset of a digit block.
func (g Grid) blockLeft(digit int) int {
	pairs := digit / 2

	return g.Gap + digit*(g.blockWidth()+g.Gap) + pairs*g.pairMargin()
}

// Size returns the width and height of the whole wall.
func (g Grid) Size() image.Point {
	last := timedigits.Count - 1

	return image.Point{
		X: g.blockLeft(last) + g.blockWidth() + g.Gap,
		Y: g.blockHeight() + 2*g.Gap,
	}
}

// Center returns the centre of a face of a digit block.
func (g Grid) Center(digit, face int) image.Point {
	column, row := face%glyph.Columns, face/glyph.Columns
	half := g.FaceSize / 2

	return image.Point{
		X: g.blockLeft(digit) + column*(g.FaceSize+g.Gap) + half,
		Y: g.Gap + row*(g.FaceSize+g.Gap) + half,
	}
}

// Radius returns the face radius.
func (g Grid) Radius() int {
	return g.FaceSize / 2
}

// HandLength returns the length of a hand: 47% of the face diameter.
func (g Grid) HandLength() int {
	return g.FaceSize * 47 / 100
}

// HandWidth returns the stroke width of a hand.
func (g Grid) HandWidth() int {
	return max(1, g.FaceSize/16)
}

// HandTip returns the end point of a hand at angle degrees on the face
// centred at c. 0 degrees points right and angles grow clockwise on screen.
func (g Grid) HandTip(c image.Point, degrees int) image.Point {
	rad := float64(degrees) * math.Pi / 180
	length := float64(g.HandLength())

	return image.Point{
		X: c.X + int(math.Round(length*math.Cos(rad))),
		Y: c.Y + int(math.Round(length*math.Sin(rad))),
	}
}
