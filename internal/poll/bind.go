package poll

// BindEnabled gates target on a predicate over upstream's data. The
// predicate is re-evaluated on every upstream state transition; while
// upstream has no data yet the target stays disabled. SetEnabled is
// edge-triggered, so an unchanged verdict issues no fetch.
//
// The coupling is read-only: target never reaches into upstream's
// internals, it only observes published state.
func BindEnabled[U, T any](upstream *Poller[U], target *Poller[T], pred func(U) bool) {
	upstream.Subscribe(func(s State[U]) {
		target.SetEnabled(s.Data != nil && pred(*s.Data))
	})
}
