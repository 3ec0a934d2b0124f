// Package xtime provides a cancellable one-shot scheduler abstraction so
// timer-driven code can be tested against a virtual clock.
package xtime

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback if it has not fired yet. Stopping an
	// already-fired or already-stopped timer is a no-op.
	Stop()
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
	Now() time.Time
}

type wallScheduler struct{}

type wallTimer struct {
	t *time.Timer
}

func (t *wallTimer) Stop() { t.t.Stop() }

func (wallScheduler) Schedule(d time.Duration, fn func()) Timer {
	return &wallTimer{t: time.AfterFunc(d, fn)}
}

func (wallScheduler) Now() time.Time { return time.Now() }

// Wall returns the wall-clock scheduler backed by time.AfterFunc.
func Wall() Scheduler { return wallScheduler{} }
