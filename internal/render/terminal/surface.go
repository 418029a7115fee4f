package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/term"

	"github.com/oshokin/clockwall/internal/domain/glyph"
	"github.com/oshokin/clockwall/internal/domain/timedigits"
	"github.com/oshokin/clockwall/internal/wall"
)

// DefaultFrameRate is the default number of repaints per second.
const DefaultFrameRate = 30

// ANSI control sequences.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

var (
	// ErrNotTerminal is returned by CheckSize when the descriptor is not a terminal.
	ErrNotTerminal = errors.New("output is not a terminal")
	// ErrTerminalTooSmall is returned by CheckSize when the wall does not fit.
	ErrTerminalTooSmall = errors.New("terminal is too small")
)

// Option configures a Surface.
type Option func(*Surface)

// hand eases one hand from one angle to another.
type hand struct {
	// from is the angle the hand had when the move started.
	from float64
	// to is the angle the hand settles on.
	to float64
	// start is when the move began.
	start time.Time
	// duration is how long the move lasts; zero jumps straight to to.
	duration time.Duration
}

// at returns the angle of the hand at now.
func (h hand) at(now time.Time) float64 {
	elapsed := now.Sub(h.start)
	if h.duration <= 0 || elapsed >= h.duration {
		return h.to
	}

	if elapsed <= 0 {
		return h.from
	}

	return h.from + (h.to-h.from)*easeInOut(float64(elapsed)/float64(h.duration))
}

// easeInOut is a cubic ease-in-out curve on [0, 1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}

	u := -2*t + 2

	return 1 - u*u*u/2
}

// Surface animates frames on an ANSI terminal.
type Surface struct {
	// out receives the escape sequences and the wall.
	out io.Writer
	// clock drives the repaint ticker and the easing.
	clock clockwork.Clock
	// interval is the time between repaints.
	interval time.Duration

	// mu protects hands.
	mu sync.Mutex
	// hands holds the hour and minute hand of every face.
	hands [timedigits.Count][glyph.FacesPerGlyph][2]hand

	// last is the most recently painted screen; identical repaints are skipped.
	last string
}

var _ wall.Surface = (*Surface)(nil)

// WithClock sets the time source.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Surface) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithFrameRate sets the number of repaints per second.
func WithFrameRate(fps int) Option {
	return func(s *Surface) {
		if fps > 0 {
			s.interval = time.Second / time.Duration(fps)
		}
	}
}

// New creates a terminal surface writing to out.
func New(out io.Writer, opts ...Option) *Surface {
	s := &Surface{
		out:      out,
		clock:    clockwork.NewRealClock(),
		interval: time.Second / DefaultFrameRate,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Draw retargets every hand to the frame, starting from its current position.
func (s *Surface) Draw(_ context.Context, frame *wall.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	for slot := range frame.Faces {
		for i, angles := range frame.Faces[slot] {
			targets := [2]int{angles.Hour, angles.Minute}

			for k, target := range targets {
				current := s.hands[slot][i][k]
				s.hands[slot][i][k] = hand{
					from:     current.at(now),
					to:       float64(target),
					start:    now,
					duration: frame.Transition,
				}
			}
		}
	}

	return nil
}

// Run repaints the wall until ctx is cancelled and then restores the cursor.
func (s *Surface) Run(ctx context.Context) error {
	if _, err := io.WriteString(s.out, hideCursor+clearScreen); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}

	err := s.loop(ctx)

	if _, restoreErr := io.WriteString(s.out, showCursor+"\n"); restoreErr != nil && err == nil {
		err = fmt.Errorf("restore terminal: %w", restoreErr)
	}

	return err
}

// loop paints once and then on every tick.
func (s *Surface) loop(ctx context.Context) error {
	if err := s.paint(s.clock.Now()); err != nil {
		return err
	}

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.Chan():
			if err := s.paint(now); err != nil {
				return err
			}
		}
	}
}

// paint writes the wall as it looks at now, unless nothing changed.
func (s *Surface) paint(now time.Time) error {
	screen := cursorHome + strings.Join(Render(s.pose(now)), "\r\n")
	if screen == s.last {
		return nil
	}

	if _, err := io.WriteString(s.out, screen); err != nil {
		return fmt.Errorf("paint: %w", err)
	}

	s.last = screen

	return nil
}

// pose returns the eased hand angles at now.
func (s *Surface) pose(now time.Time) *Pose {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p Pose

	for slot := range s.hands {
		for i, hands := range s.hands[slot] {
			p[slot][i] = Hands{
				Hour:   hands[0].at(now),
				Minute: hands[1].at(now),
			}
		}
	}

	return &p
}

// CheckSize verifies that fd is a terminal large enough for the wall.
func CheckSize(fd int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if width < Width || height < Height {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTerminalTooSmall, width, height, Width, Height)
	}

	return nil
}
