package xtime

import (
	"sync"
	"time"
)

// Manual is a virtual-clock Scheduler for tests. Time only moves when
// Advance is called; due callbacks fire synchronously, in deadline order,
// on the advancing goroutine. Callbacks may schedule further timers.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	pending []*manualTimer
}

var _ Scheduler = (*Manual)(nil)

type manualTimer struct {
	m        *Manual
	id       int
	deadline time.Time
	fn       func()
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Schedule(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		m:        m,
		id:       m.nextID,
		deadline: m.now.Add(d),
		fn:       fn,
	}
	m.nextID++
	m.pending = append(m.pending, t)
	return t
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls within the window before letting the clock settle at now+d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		t := m.popDueLocked(target)
		if t == nil {
			break
		}
		if t.deadline.After(m.now) {
			m.now = t.deadline
		}
		m.mu.Unlock()
		t.fn()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// popDueLocked removes and returns the earliest pending timer with a
// deadline at or before target, or nil if none is due.
func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	best := -1
	for i, t := range m.pending {
		if t.deadline.After(target) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := m.pending[best]
		if t.deadline.Before(b.deadline) || (t.deadline.Equal(b.deadline) && t.id < b.id) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	t := m.pending[best]
	m.pending = append(m.pending[:best], m.pending[best+1:]...)
	return t
}

func (t *manualTimer) Stop() {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for i, p := range t.m.pending {
		if p == t {
			t.m.pending = append(t.m.pending[:i], t.m.pending[i+1:]...)
			return
		}
	}
}

// PendingCount reports how many timers are scheduled but not yet fired.
func (m *Manual) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
