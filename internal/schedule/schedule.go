package schedule

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// TaskFunc is one run of a recurring task. now is the instant the run started.
type TaskFunc func(ctx context.Context, now time.Time) error

// NextFunc returns the delay until the next run, given the current time.
type NextFunc func(now time.Time) time.Duration

// Recurring runs a task over and over with a delay computed after each run.
// Runs never overlap: the next timer is armed only after the task returns.
type Recurring struct {
	// clock is the time source for Now and timers.
	clock clockwork.Clock
	// next computes the delay before the following run.
	next NextFunc
	// task is the work executed on every run.
	task TaskFunc
}

// Sleep waits for d or until ctx is cancelled, whichever comes first.
// It returns ctx.Err() on cancellation.
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d <= 0 {
		return nil
	}

	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// NewRecurring creates a recurring task.
func NewRecurring(clock clockwork.Clock, next NextFunc, task TaskFunc) *Recurring {
	return &Recurring{
		clock: clock,
		next:  next,
		task:  task,
	}
}

// Run executes the task immediately and then on every delay returned by next
// until ctx is cancelled. It returns nil on cancellation and the task error
// if a run fails.
func (r *Recurring) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := r.task(ctx, r.clock.Now()); err != nil {
			return err
		}

		// Measure after the task so slow runs do not push the schedule.
		if err := Sleep(ctx, r.clock, r.next(r.clock.Now())); err != nil {
			return nil
		}
	}
}
