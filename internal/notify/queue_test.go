package notify

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tecpap/lineview/internal/xtime"
)

func TestQueueAutoDismissesAfterTTL(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched))

	q.Success("Simulation started", "")

	if got := len(q.Items()); got != 1 {
		t.Fatalf("len(Items()) = %d, want 1", got)
	}

	sched.Advance(DefaultTTL - time.Millisecond)
	if got := len(q.Items()); got != 1 {
		t.Fatalf("notification dismissed before TTL, len(Items()) = %d", got)
	}

	sched.Advance(time.Millisecond)
	if got := len(q.Items()); got != 0 {
		t.Fatalf("len(Items()) = %d after TTL, want 0", got)
	}
	if got := sched.PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d after auto-dismiss, want 0", got)
	}
}

func TestQueueDismissCancelsTimer(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched))

	n := q.Warning("Plan unchanged", "queue order unchanged")
	q.Dismiss(n.ID)

	if got := len(q.Items()); got != 0 {
		t.Fatalf("len(Items()) = %d after Dismiss, want 0", got)
	}
	if got := sched.PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d after Dismiss, want 0", got)
	}

	// the expired timer for a dismissed notification must not resurface
	// or panic later
	sched.Advance(time.Minute)
}

func TestQueueDismissUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched))

	q.Error("Start failed", "connection refused")
	q.Dismiss("no-such-id")
	q.Dismiss("no-such-id")

	if got := len(q.Items()); got != 1 {
		t.Errorf("len(Items()) = %d, want 1", got)
	}
}

func TestQueueKeepsAppendOrder(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched))

	first := q.Success("Simulation started", "")
	second := q.Warning("Started with warning", "day already over")
	third := q.Error("Event failed", "bad request")

	want := []Notification{first, second, third}
	if diff := cmp.Diff(want, q.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}

	q.Dismiss(second.ID)

	want = []Notification{first, third}
	if diff := cmp.Diff(want, q.Items()); diff != "" {
		t.Errorf("Items() after Dismiss mismatch (-want +got):\n%s", diff)
	}
}

func TestQueueCustomTTL(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched), WithTTL(time.Second))

	q.Success("Work order created", "OF-0042")

	sched.Advance(time.Second)
	if got := len(q.Items()); got != 0 {
		t.Errorf("len(Items()) = %d after custom TTL, want 0", got)
	}
}

func TestQueueNotifiesSubscribersOnEveryChange(t *testing.T) {
	t.Parallel()

	sched := xtime.NewManual(time.Unix(0, 0))
	q := New(WithScheduler(sched))

	var snapshots [][]Notification
	q.Subscribe(func(items []Notification) {
		snapshots = append(snapshots, items)
	})

	n := q.Success("Simulation stopped", "")
	q.Dismiss(n.ID)

	if got := len(snapshots); got != 2 {
		t.Fatalf("listener invoked %d times, want 2", got)
	}
	if diff := cmp.Diff([]Notification{n}, snapshots[0]); diff != "" {
		t.Errorf("push snapshot mismatch (-want +got):\n%s", diff)
	}
	if got := len(snapshots[1]); got != 0 {
		t.Errorf("dismiss snapshot has %d items, want 0", got)
	}
}
