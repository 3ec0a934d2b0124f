// Package notify holds transient user-facing notifications, each
// self-expiring after a fixed duration unless dismissed first.
package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tecpap/lineview/internal/xtime"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// DefaultTTL is how long a notification stays up without being dismissed.
const DefaultTTL = 5 * time.Second

type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	CreatedAt time.Time
}

// Queue is an ordered sequence of notifications; append order is display
// order. No priority, no de-duplication.
type Queue struct {
	sched xtime.Scheduler
	ttl   time.Duration

	mu        sync.Mutex
	items     []Notification
	timers    map[string]xtime.Timer
	listeners []func([]Notification)
}

type Option func(*Queue)

func WithScheduler(sched xtime.Scheduler) Option {
	return func(q *Queue) { q.sched = sched }
}

func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) { q.ttl = ttl }
}

func New(opts ...Option) *Queue {
	q := &Queue{
		sched:  xtime.Wall(),
		ttl:    DefaultTTL,
		timers: map[string]xtime.Timer{},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and arms its auto-dismiss timer.
func (q *Queue) Push(kind Kind, title, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: q.sched.Now(),
	}

	q.mu.Lock()
	q.items = append(q.items, n)
	q.timers[n.ID] = q.sched.Schedule(q.ttl, func() { q.Dismiss(n.ID) })
	items := slices.Clone(q.items)
	listeners := slices.Clone(q.listeners)
	q.mu.Unlock()

	q.publish(listeners, items)
	return n
}

func (q *Queue) Success(title, message string) Notification {
	return q.Push(KindSuccess, title, message)
}

func (q *Queue) Warning(title, message string) Notification {
	return q.Push(KindWarning, title, message)
}

func (q *Queue) Error(title, message string) Notification {
	return q.Push(KindError, title, message)
}

// Dismiss removes the notification with the given id and cancels its timer.
// Dismissing an absent id is a no-op, not an error.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()

	idx := slices.IndexFunc(q.items, func(n Notification) bool { return n.ID == id })
	if idx == -1 {
		q.mu.Unlock()
		return
	}

	q.items = append(q.items[:idx], q.items[idx+1:]...)
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}

	items := slices.Clone(q.items)
	listeners := slices.Clone(q.listeners)
	q.mu.Unlock()

	q.publish(listeners, items)
}

// Items returns the notifications in append order.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.items)
}

// Subscribe registers a listener invoked with a snapshot after every change.
func (q *Queue) Subscribe(fn func([]Notification)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, fn)
}

func (q *Queue) publish(listeners []func([]Notification), items []Notification) {
	for _, fn := range listeners {
		fn(items)
	}
}
