package wall

import (
	"context"
	"time"

	"github.com/oshokin/clockwall/internal/domain/face"
	"github.com/oshokin/clockwall/internal/domain/glyph"
	"github.com/oshokin/clockwall/internal/domain/timedigits"
)

// Phase is the state of the wall.
type Phase int32

const (
	// PhaseStartup shows random hand positions before the first time sample.
	PhaseStartup Phase = iota
	// PhaseRunning shows the current time.
	PhaseRunning
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Faces holds the angles of every face, indexed by digit slot and face.
type Faces [timedigits.Count][glyph.FacesPerGlyph]face.Angles

// Frame is one render instruction for a surface.
type Frame struct {
	// Phase is the wall phase that produced the frame.
	Phase Phase
	// Digits is the displayed time. It is all zeros during startup.
	Digits timedigits.Digits
	// Faces holds the target angles of every face.
	Faces Faces
	// Transition is how long the surface should take to move the hands.
	Transition time.Duration
	// At is the instant the frame was produced.
	At time.Time
}

// Surface draws frames. Draw must not block for the duration of the
// transition: animating the hands is the surface's own business.
type Surface interface {
	Draw(ctx context.Context, frame *Frame) error
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(ctx context.Context, frame *Frame) error

// Draw calls f.
func (f SurfaceFunc) Draw(ctx context.Context, frame *Frame) error {
	return f(ctx, frame)
}

// Compose returns a running frame for now as drawn by a freshly created
// wall: hands are placed directly, without any history.
func Compose(now time.Time, transition time.Duration) *Frame {
	var faces [timedigits.Count][glyph.FacesPerGlyph]face.Face

	return turnToTime(&faces, now, transition)
}

// turnToTime turns every face to the glyphs of now and returns the frame.
func turnToTime(
	faces *[timedigits.Count][glyph.FacesPerGlyph]face.Face,
	now time.Time,
	transition time.Duration,
) *Frame {
	frame := &Frame{
		Phase:      PhaseRunning,
		Digits:     timedigits.Sample(now),
		Transition: transition,
		At:         now,
	}

	for slot, digit := range frame.Digits {
		g := glyph.For(digit)

		for i, target := range g {
			frame.Faces[slot][i] = faces[slot][i].Turn(target)
		}
	}

	return frame
}
