// Package schedule provides cancellable timers driven by a clockwork clock.
//
// Sleep is a one-shot delay. Recurring runs a task, asks when the next run is
// due, waits and repeats. Both stop their pending timer as soon as the
// context is cancelled, so no task runs after its owner is torn down.
package schedule
