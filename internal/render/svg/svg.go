// Package svg draws clock wall frames as SVG documents.
package svg

import (
	"context"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"

	"github.com/oshokin/clockwall/internal/render/layout"
	"github.com/oshokin/clockwall/internal/wall"
)

const (
	// faceGradientID names the shading gradient of the faces.
	faceGradientID = "face"

	backgroundStyle = "fill:white"
	faceStyle       = "fill:url(#" + faceGradientID + ");stroke:white;stroke-width:2"
	handStyleFormat = "stroke:black;stroke-width:%d;stroke-linecap:round"
)

// Surface writes one standalone SVG document per frame.
// Hands are drawn at their target angles; there is no animation.
type Surface struct {
	// out receives the documents.
	out io.Writer
	// grid is the face geometry.
	grid layout.Grid
}

var _ wall.Surface = (*Surface)(nil)

// New creates an SVG surface writing to out.
func New(out io.Writer, grid layout.Grid) *Surface {
	return &Surface{
		out:  out,
		grid: grid,
	}
}

// Draw writes the frame as an SVG document.
func (s *Surface) Draw(_ context.Context, frame *wall.Frame) error {
	var (
		canvas    = svgo.New(s.out)
		size      = s.grid.Size()
		radius    = s.grid.Radius()
		handStyle = fmt.Sprintf(handStyleFormat, s.grid.HandWidth())
	)

	canvas.Start(size.X, size.Y)
	canvas.Title("clockwall " + frame.Digits.String())

	// Light from the top right, like the shading of a physical dial.
	canvas.Def()
	canvas.LinearGradient(faceGradientID, 100, 0, 0, 100, []svgo.Offcolor{
		{Offset: 10, Color: "#d0d0d0", Opacity: 1},
		{Offset: 100, Color: "white", Opacity: 1},
	})
	canvas.DefEnd()

	canvas.Rect(0, 0, size.X, size.Y, backgroundStyle)

	for slot := range frame.Faces {
		canvas.Gid(fmt.Sprintf("digit-%d", slot))

		for i, angles := range frame.Faces[slot] {
			c := s.grid.Center(slot, i)
			hour := s.grid.HandTip(c, angles.Hour)
			minute := s.grid.HandTip(c, angles.Minute)

			canvas.Circle(c.X, c.Y, radius, faceStyle)
			canvas.Line(c.X, c.Y, hour.X, hour.Y, handStyle)
			canvas.Line(c.X, c.Y, minute.X, minute.Y, handStyle)
		}

		canvas.Gend()
	}

	canvas.End()

	return nil
}
