package wall

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/clockwall/internal/domain/face"
	"github.com/oshokin/clockwall/internal/domain/glyph"
	"github.com/oshokin/clockwall/internal/domain/timedigits"
	"github.com/oshokin/clockwall/internal/logger"
	"github.com/oshokin/clockwall/internal/schedule"
)

const (
	// DefaultStartupDelay is how long the random startup spin lasts.
	DefaultStartupDelay = 600 * time.Millisecond
	// DefaultStartupTransition is the hand animation duration of the startup spin.
	DefaultStartupTransition = time.Second
	// DefaultRunningTransition is the hand animation duration while showing the time.
	DefaultRunningTransition = 400 * time.Millisecond
)

// RandomFunc returns a uniformly distributed angle in [0, 360).
type RandomFunc func() int

// Option configures a Wall.
type Option func(*Wall)

// Wall owns the state of every face and runs the startup/running loop.
type Wall struct {
	// surface receives every frame.
	surface Surface
	// clock provides time and timers.
	clock clockwork.Clock
	// random places hands during startup.
	random RandomFunc

	// startupDelay is the time spent in the startup phase.
	startupDelay time.Duration
	// startupTransition is the frame transition during startup.
	startupTransition time.Duration
	// runningTransition is the frame transition while running.
	runningTransition time.Duration

	// faces holds the previous angles of every face. Only Run touches it.
	faces [timedigits.Count][glyph.FacesPerGlyph]face.Face
	// phase is read concurrently through Phase.
	phase atomic.Int32
}

// WithClock sets the time source.
func WithClock(clock clockwork.Clock) Option {
	return func(w *Wall) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// WithRandom sets the source of startup angles.
func WithRandom(random RandomFunc) Option {
	return func(w *Wall) {
		if random != nil {
			w.random = random
		}
	}
}

// WithStartupDelay sets how long the startup phase lasts.
func WithStartupDelay(d time.Duration) Option {
	return func(w *Wall) {
		if d >= 0 {
			w.startupDelay = d
		}
	}
}

// WithStartupTransition sets the hand animation duration during startup.
func WithStartupTransition(d time.Duration) Option {
	return func(w *Wall) {
		if d >= 0 {
			w.startupTransition = d
		}
	}
}

// WithRunningTransition sets the hand animation duration while running.
func WithRunningTransition(d time.Duration) Option {
	return func(w *Wall) {
		if d >= 0 {
			w.runningTransition = d
		}
	}
}

// New creates a wall that draws on surface.
func New(surface Surface, opts ...Option) *Wall {
	w := &Wall{
		surface:           surface,
		clock:             clockwork.NewRealClock(),
		random:            randomAngle,
		startupDelay:      DefaultStartupDelay,
		startupTransition: DefaultStartupTransition,
		runningTransition: DefaultRunningTransition,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Phase returns the current phase.
func (w *Wall) Phase() Phase {
	return Phase(w.phase.Load())
}

// Run draws the startup spin, waits for the startup delay and then shows the
// time until ctx is cancelled. Cancelling during startup means the time
// sampler is never armed. Run returns nil on cancellation.
func (w *Wall) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "wall")

	w.phase.Store(int32(PhaseStartup))
	logger.DebugKV(ctx, "Startup spin", "delay", w.startupDelay.String())

	if err := w.surface.Draw(ctx, w.scatter()); err != nil {
		return fmt.Errorf("draw startup frame: %w", err)
	}

	if err := schedule.Sleep(ctx, w.clock, w.startupDelay); err != nil {
		logger.Debug(ctx, "Cancelled during startup")

		return nil
	}

	w.phase.Store(int32(PhaseRunning))
	logger.Info(ctx, "Showing time")

	sampler := schedule.NewRecurring(w.clock, timedigits.UntilNextSecond, w.tick)

	if err := sampler.Run(ctx); err != nil {
		return err
	}

	logger.Debug(ctx, "Stopped")

	return nil
}

// scatter turns every face to a random position. The random angles become
// the starting point of the first time sample, so hands then spin forward
// into place.
func (w *Wall) scatter() *Frame {
	frame := &Frame{
		Phase:      PhaseStartup,
		Transition: w.startupTransition,
		At:         w.clock.Now(),
	}

	for slot := range w.faces {
		for i := range w.faces[slot] {
			target := glyph.AnglePair{Hour: w.random(), Minute: w.random()}
			frame.Faces[slot][i] = w.faces[slot][i].Turn(target)
		}
	}

	return frame
}

// tick samples the time and draws the matching frame.
func (w *Wall) tick(ctx context.Context, now time.Time) error {
	frame := turnToTime(&w.faces, now, w.runningTransition)

	logger.DebugKV(ctx, "Time sampled", "digits", frame.Digits.String())

	if err := w.surface.Draw(ctx, frame); err != nil {
		return fmt.Errorf("draw frame at %s: %w", frame.Digits, err)
	}

	return nil
}

// randomAngle returns a uniformly distributed whole degree.
func randomAngle() int {
	//nolint:gosec // Decorative randomness.
	return rand.IntN(face.FullTurn)
}
