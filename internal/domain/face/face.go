package face

import "github.com/oshokin/clockwall/internal/domain/glyph"

// FullTurn is the number of degrees in one revolution.
const FullTurn = 360

// Angles holds the rendered hand angles of a face. The values are unbounded
// and only grow, so surfaces can interpolate between two frames linearly.
type Angles struct {
	// Hour is the hour hand angle in degrees.
	Hour int
	// Minute is the minute hand angle in degrees.
	Minute int
}

// Face keeps the previous angles of one clock face. The zero value is a face
// with both hands at 0 degrees.
type Face struct {
	previous Angles
}

// Continue returns the angle congruent to target that is reached from
// previous by rotating forward less than a full turn.
func Continue(target, previous int) int {
	delta := ((target-previous)%FullTurn + FullTurn) % FullTurn

	return previous + delta
}

// Turn moves both hands forward to the target pair and returns the new angles.
func (f *Face) Turn(target glyph.AnglePair) Angles {
	f.previous = Angles{
		Hour:   Continue(target.Hour, f.previous.Hour),
		Minute: Continue(target.Minute, f.previous.Minute),
	}

	return f.previous
}
