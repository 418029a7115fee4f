package glyph

import (
	"errors"
	"fmt"
)

const (
	// Count is the number of glyphs in the table, one per decimal digit.
	Count = 10
	// Columns is the number of faces in one glyph row.
	Columns = 4
	// Rows is the number of face rows in one glyph.
	Rows = 6
	// FacesPerGlyph is the number of clock faces drawing one digit.
	FacesPerGlyph = Columns * Rows
)

// ErrDigitOutOfRange is returned by Lookup for digits outside [0, 9].
var ErrDigitOutOfRange = errors.New("digit out of range")

// AnglePair is the target position of both hands of one clock face.
// Angles are degrees in [0, 360), 0 points right and angles grow clockwise.
type AnglePair struct {
	// Hour is the hour hand angle.
	Hour int
	// Minute is the minute hand angle.
	Minute int
}

// Primitive hand positions the glyphs are drawn with.
var (
	// Horizontal draws a line through the face from left to right.
	Horizontal = AnglePair{Hour: 0, Minute: 180}
	// Vertical draws a line through the face from top to bottom.
	Vertical = AnglePair{Hour: 270, Minute: 90}
	// TopLeft joins the left and top edges.
	TopLeft = AnglePair{Hour: 180, Minute: 270}
	// TopRight joins the right and top edges.
	TopRight = AnglePair{Hour: 0, Minute: 270}
	// BottomLeft joins the left and bottom edges.
	BottomLeft = AnglePair{Hour: 180, Minute: 90}
	// BottomRight joins the right and bottom edges.
	BottomRight = AnglePair{Hour: 0, Minute: 90}
	// Empty parks both hands on the same diagonal, so the face looks blank.
	Empty = AnglePair{Hour: 135, Minute: 135}
)

// Glyph is the row-major hand configuration of one digit.
type Glyph [FacesPerGlyph]AnglePair

// Lookup returns the glyph of a digit.
func Lookup(digit int) (Glyph, error) {
	if digit < 0 || digit >= Count {
		return Glyph{}, fmt.Errorf("%w: %d", ErrDigitOutOfRange, digit)
	}

	return table[digit], nil
}

// For returns the glyph of a digit and panics if the digit is not in [0, 9].
// Digits derived from a time of day are always in range.
func For(digit int) Glyph {
	g, err := Lookup(digit)
	if err != nil {
		panic(err)
	}

	return g
}
