// Package poll implements a generic recurring-fetch engine: run an
// asynchronous operation immediately and then on a fixed cadence, projecting
// results into a live {data, loading, error} state.
//
// A poller's identity is tied to its operation and cadence; to change
// either, Close the poller and create a new one.
package poll

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tecpap/lineview/internal/xslog"
	"github.com/tecpap/lineview/internal/xtime"
)

// FetchFunc is the asynchronous operation a poller runs on each attempt.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// State is a poller's live projection.
//
// Data is last-known-good: a failed fetch sets Err but never clears Data.
// Loading is true only while a manual Refetch is outstanding; background
// ticks, including the initial fetch, never touch it.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// Listener observes state transitions. Listeners run synchronously, outside
// the poller's lock, on the goroutine that completed the transition.
type Listener[T any] func(State[T])

type Poller[T any] struct {
	fetch    FetchFunc[T]
	interval time.Duration
	sched    xtime.Scheduler
	logger   *slog.Logger
	onError  func(error)

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	enabled   bool
	closed    bool
	inFlight  bool // background fetch outstanding
	manual    int  // manual fetches outstanding
	timer     xtime.Timer
	data      *T
	err       error
	listeners []Listener[T]
}

type config struct {
	enabled bool
	sched   xtime.Scheduler
	logger  *slog.Logger
	onError func(error)
}

type Option func(*config)

// WithEnabled controls whether the poller starts fetching at creation.
func WithEnabled(enabled bool) Option {
	return func(cfg *config) { cfg.enabled = enabled }
}

// WithOnError registers a callback invoked exactly once per failed attempt,
// after the failure has been applied to state.
func WithOnError(fn func(error)) Option {
	return func(cfg *config) { cfg.onError = fn }
}

func WithScheduler(sched xtime.Scheduler) Option {
	return func(cfg *config) { cfg.sched = sched }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// New creates a poller. While enabled it fetches once immediately and then
// every interval; ticks that fire while a background fetch is still
// outstanding are dropped, so at most one background fetch is in flight.
func New[T any](fetch FetchFunc[T], interval time.Duration, opts ...Option) *Poller[T] {
	cfg := &config{
		enabled: true,
		sched:   xtime.Wall(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Poller[T]{
		fetch:    fetch,
		interval: interval,
		sched:    cfg.sched,
		logger:   cfg.logger,
		onError:  cfg.onError,
		ctx:      ctx,
		cancel:   cancel,
	}

	if cfg.enabled {
		p.mu.Lock()
		p.startLocked()
		p.mu.Unlock()
	}

	return p
}

// Refetch forces a manual fetch: Loading flips true immediately and back to
// false when this fetch settles. It runs regardless of the schedule's phase
// and may overlap an outstanding background fetch; in that race the response
// applied last wins. The recurring schedule's timing is not reset.
func (p *Poller[T]) Refetch() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.manual++
	state := p.stateLocked()
	listeners := slices.Clone(p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}

	go p.run(true)
}

// SetEnabled is edge-triggered: flipping to true performs exactly one
// immediate background fetch and resumes the cadence; flipping to false
// cancels the pending timer. An already-issued fetch is left to complete.
// Calls that do not change the flag are no-ops.
func (p *Poller[T]) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.enabled == enabled {
		return
	}

	if enabled {
		p.startLocked()
		return
	}

	p.enabled = false
	p.stopTimerLocked()
}

// Close tears the poller down: the timer is cancelled, the fetch context is
// cancelled, and any fetch that resolves afterwards is discarded without
// mutating state. Idempotent.
func (p *Poller[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.enabled = false
	p.stopTimerLocked()
	p.mu.Unlock()

	p.cancel()
}

func (p *Poller[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Data returns the last-known-good value, or nil before the first success.
func (p *Poller[T]) Data() *T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

func (p *Poller[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Poller[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.manual > 0
}

func (p *Poller[T]) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Subscribe registers a listener for every subsequent state transition.
func (p *Poller[T]) Subscribe(l Listener[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *Poller[T]) stateLocked() State[T] {
	return State[T]{
		Data:    p.data,
		Loading: p.manual > 0,
		Err:     p.err,
	}
}

// startLocked enables the poller, issues the immediate fetch unless one is
// already outstanding, and arms the cadence.
func (p *Poller[T]) startLocked() {
	p.enabled = true
	if !p.inFlight {
		p.beginBackgroundLocked()
	}
	p.scheduleNextLocked()
}

func (p *Poller[T]) scheduleNextLocked() {
	p.timer = p.sched.Schedule(p.interval, p.tick)
}

func (p *Poller[T]) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Poller[T]) tick() {
	p.mu.Lock()
	if p.closed || !p.enabled {
		p.mu.Unlock()
		return
	}

	p.scheduleNextLocked()

	if p.inFlight {
		// previous fetch still outstanding: drop this tick rather than
		// queue it or run it concurrently
		p.logger.Debug("tick skipped, fetch in flight", xslog.Interval(p.interval))
		p.mu.Unlock()
		return
	}

	p.beginBackgroundLocked()
	p.mu.Unlock()
}

func (p *Poller[T]) beginBackgroundLocked() {
	p.inFlight = true
	go p.run(false)
}

func (p *Poller[T]) run(manual bool) {
	data, err := p.fetch(p.ctx)
	p.settle(manual, data, err)
}

// settle applies a fetch outcome. Completions that arrive after Close are
// discarded so no state is observable post-teardown.
func (p *Poller[T]) settle(manual bool, data T, err error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	if manual {
		p.manual--
	} else {
		p.inFlight = false
	}

	if err != nil {
		p.err = err
	} else {
		v := data
		p.data = &v
		p.err = nil
	}

	state := p.stateLocked()
	listeners := slices.Clone(p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}

	if err != nil && p.onError != nil {
		p.onError(err)
	}
}
