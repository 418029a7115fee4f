// Package raster draws clock wall frames as PNG images.
//
// Shapes are rasterized at twice the target size with an anti-aliasing
// vector rasterizer and then downsampled, which keeps thin hands smooth.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/oshokin/clockwall/internal/render/layout"
	"github.com/oshokin/clockwall/internal/wall"
)

const (
	// supersample is the scale factor of the intermediate image.
	supersample = 2
	// circleSegments approximates a face outline.
	circleSegments = 64
)

//nolint:gochecknoglobals // Palette of the wall.
var (
	backgroundColor = color.White
	rimColor        = color.White
	faceColor       = color.RGBA{R: 0xe4, G: 0xe4, B: 0xe4, A: 0xff}
	handColor       = color.Black
)

// Surface encodes one PNG image per frame.
type Surface struct {
	// out receives the encoded images.
	out io.Writer
	// grid is the face geometry at output size.
	grid layout.Grid
}

var _ wall.Surface = (*Surface)(nil)

// New creates a PNG surface writing to out.
func New(out io.Writer, grid layout.Grid) *Surface {
	return &Surface{
		out:  out,
		grid: grid,
	}
}

// Draw renders the frame and writes it as PNG.
func (s *Surface) Draw(_ context.Context, frame *wall.Frame) error {
	img := Render(frame, s.grid)

	if err := imaging.Encode(s.out, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// Render draws the frame into an image of grid.Size().
func Render(frame *wall.Frame, grid layout.Grid) image.Image {
	big := layout.Grid{
		FaceSize: grid.FaceSize * supersample,
		Gap:      grid.Gap * supersample,
	}

	size := big.Size()
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	var r vector.Rasterizer

	radius := float32(big.Radius())
	rim := float32(supersample)
	handWidth := float32(big.HandWidth())

	for slot := range frame.Faces {
		for i, angles := range frame.Faces[slot] {
			c := big.Center(slot, i)

			// Each face is rasterized in its own box; shapes use box coordinates.
			box := image.Rect(c.X, c.Y, c.X, c.Y).Inset(-big.Radius() - big.Gap).Intersect(dst.Bounds())
			cx, cy := float32(c.X-box.Min.X), float32(c.Y-box.Min.Y)

			fill(&r, dst, box, rimColor, func() { circle(&r, cx, cy, radius) })
			fill(&r, dst, box, faceColor, func() { circle(&r, cx, cy, radius-rim) })

			for _, a := range []int{angles.Hour, angles.Minute} {
				tip := big.HandTip(c, a)
				tx, ty := float32(tip.X-box.Min.X), float32(tip.Y-box.Min.Y)

				fill(&r, dst, box, handColor, func() { segment(&r, cx, cy, tx, ty, handWidth) })
			}
		}
	}

	out := grid.Size()

	return imaging.Resize(dst, out.X, out.Y, imaging.Lanczos)
}

// fill resets the rasterizer to box, lets path add a shape in box
// coordinates and paints it over dst with c.
func fill(r *vector.Rasterizer, dst draw.Image, box image.Rectangle, c color.Color, path func()) {
	r.Reset(box.Dx(), box.Dy())
	r.DrawOp = draw.Over
	path()
	r.Draw(dst, box, image.NewUniform(c), image.Point{})
}

// circle adds a polygon approximating a circle.
func circle(r *vector.Rasterizer, cx, cy, radius float32) {
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x := cx + radius*float32(math.Cos(theta))
		y := cy + radius*float32(math.Sin(theta))

		if i == 0 {
			r.MoveTo(x, y)

			continue
		}

		r.LineTo(x, y)
	}

	r.ClosePath()
}

// segment adds a rectangle of the given width from (x0, y0) to (x1, y1),
// extended by half the width at both ends to mimic round caps.
func segment(r *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0

	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	// Unit direction and its normal, scaled to half the width.
	ux, uy := dx/length, dy/length
	half := width / 2
	nx, ny := -uy*half, ux*half

	x0, y0 = x0-ux*half, y0-uy*half
	x1, y1 = x1+ux*half, y1+uy*half

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}
