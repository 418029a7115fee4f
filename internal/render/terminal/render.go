package terminal

import (
	"math"
	"strings"

	"github.com/oshokin/clockwall/internal/domain/glyph"
	"github.com/oshokin/clockwall/internal/domain/timedigits"
)

const (
	// CellWidth and CellHeight are the size of one face in characters.
	CellWidth  = 3
	CellHeight = 3

	// digitGap separates the two digits of a pair, pairGap separates pairs.
	digitGap = 1
	pairGap  = 2

	// Width and Height are the size of the whole wall in characters.
	Width  = timedigits.Count*glyph.Columns*CellWidth + (timedigits.Count/2)*digitGap + (timedigits.Count/2-1)*pairGap
	Height = glyph.Rows * CellHeight

	// directions is the number of distinct hand directions a cell can show.
	directions = 8

	centerRune = '·'
)

// Hands are the current, possibly fractional, angles of one face.
type Hands struct {
	// Hour is the hour hand angle in degrees.
	Hour float64
	// Minute is the minute hand angle in degrees.
	Minute float64
}

// Pose holds the hands of every face, indexed by digit slot and face.
type Pose [timedigits.Count][glyph.FacesPerGlyph]Hands

// stroke is where and how a hand pointing in one direction is drawn.
type stroke struct {
	// row is the cell row of the hand glyph, 0 at the top.
	row int
	// column is the cell column of the hand glyph, 0 at the left.
	column int
	// r is the line character drawn for the hand.
	r rune
}

// strokes is indexed by direction: 0 is right, then clockwise in 45 degree steps.
//
//nolint:gochecknoglobals // Static lookup table.
var strokes = [directions]stroke{
	{row: 1, column: 2, r: '─'},
	{row: 2, column: 2, r: '╲'},
	{row: 2, column: 1, r: '│'},
	{row: 2, column: 0, r: '╱'},
	{row: 1, column: 0, r: '─'},
	{row: 0, column: 0, r: '╲'},
	{row: 0, column: 1, r: '│'},
	{row: 0, column: 2, r: '╱'},
}

// direction rounds an angle to the nearest of the eight directions.
func direction(degrees float64) int {
	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}

	return int(math.Floor(normalized/(360/directions)+0.5)) % directions
}

// Render rasterizes a pose into Height lines of Width characters.
func Render(pose *Pose) []string {
	canvas := make([][]rune, Height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", Width))
	}

	for slot := range pose {
		left := blockLeft(slot)

		for i, hands := range pose[slot] {
			top := (i / glyph.Columns) * CellHeight
			x := left + (i%glyph.Columns)*CellWidth

			canvas[top+1][x+1] = centerRune

			for _, a := range []float64{hands.Hour, hands.Minute} {
				s := strokes[direction(a)]
				canvas[top+s.row][x+s.column] = s.r
			}
		}
	}

	lines := make([]string, Height)
	for i, row := range canvas {
		lines[i] = string(row)
	}

	return lines
}

// blockLeft returns the first column of a digit block.
func blockLeft(slot int) int {
	blockWidth := glyph.Columns * CellWidth

	return slot*blockWidth + (slot/2)*pairGap + (slot-slot/2)*digitGap
}
