package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockwall/internal/domain/face"
	"github.com/oshokin/clockwall/internal/wall"
)

// frameWith returns a frame with every hand at the same angle.
func frameWith(angle int, transition time.Duration) *wall.Frame {
	frame := &wall.Frame{Transition: transition}

	for slot := range frame.Faces {
		for i := range frame.Faces[slot] {
			frame.Faces[slot][i] = face.Angles{Hour: angle, Minute: angle}
		}
	}

	return frame
}

// TestEaseInOut checks the shape of the easing curve.
func TestEaseInOut(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0, easeInOut(0), 1e-9)
	require.InDelta(t, 0.5, easeInOut(0.5), 1e-9)
	require.InDelta(t, 1, easeInOut(1), 1e-9)

	prev := 0.0
	for step := 1; step <= 100; step++ {
		v := easeInOut(float64(step) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

// TestSurface_DrawEasesHands interpolates between frames and retargets mid-flight.
func TestSurface_DrawEasesHands(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := New(&bytes.Buffer{}, WithClock(clock))

	require.NoError(t, s.Draw(context.Background(), frameWith(90, time.Second)))

	start := clock.Now()
	require.InDelta(t, 0, s.pose(start)[0][0].Hour, 1e-9)
	require.InDelta(t, 45, s.pose(start.Add(500*time.Millisecond))[3][7].Minute, 1e-9)
	require.InDelta(t, 90, s.pose(start.Add(2*time.Second))[5][23].Hour, 1e-9)

	// Retarget halfway: the new animation starts from where the hand is.
	clock.Advance(500 * time.Millisecond)
	require.NoError(t, s.Draw(context.Background(), frameWith(450, time.Second)))

	now := clock.Now()
	require.InDelta(t, 45, s.pose(now)[0][0].Hour, 1e-9)
	require.InDelta(t, 247.5, s.pose(now.Add(500*time.Millisecond))[0][0].Hour, 1e-9)
	require.InDelta(t, 450, s.pose(now.Add(time.Second))[0][0].Hour, 1e-9)

	// A zero transition jumps straight to the target.
	require.NoError(t, s.Draw(context.Background(), frameWith(500, 0)))
	require.InDelta(t, 500, s.pose(now)[0][0].Minute, 1e-9)
}

// TestSurface_Run paints, hides the cursor and restores it on cancellation.
func TestSurface_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer

	clock := clockwork.NewFakeClock()
	s := New(&out, WithClock(clock), WithFrameRate(10))

	require.NoError(t, s.Draw(ctx, frameWith(0, 0)))

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)

	go func() {
		done <- s.Run(runCtx)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	stop()
	require.NoError(t, <-done)

	screen := out.String()
	require.True(t, strings.HasPrefix(screen, hideCursor+clearScreen+cursorHome))
	require.Contains(t, screen, "·─")
	require.True(t, strings.HasSuffix(screen, showCursor+"\n"))
	require.Equal(t, 1, strings.Count(screen, cursorHome))
}

// TestCheckSize rejects descriptors that are not terminals.
func TestCheckSize(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, CheckSize(-1), ErrNotTerminal)
}
