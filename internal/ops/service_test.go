package ops

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/xtime"
)

var testLogger = slog.New(slog.DiscardHandler)

type fakeRefetcher struct {
	calls atomic.Int64
}

func (f *fakeRefetcher) Refetch() { f.calls.Add(1) }

func newTestService(t *testing.T, handler http.Handler) (*Service, *notify.Queue) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	toasts := notify.New(notify.WithScheduler(xtime.NewManual(time.Unix(0, 0))))
	return NewService(scheduler.New(srv.URL), toasts, testLogger), toasts
}

func jsonResponse(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if _, err := io.WriteString(w, body); err != nil {
		t.Errorf("writing response: %v", err)
	}
}

func TestStartSimulation(t *testing.T) {
	t.Parallel()

	var gotBody string
	svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/realtime/start" {
			t.Errorf("request = %s %s, want POST /realtime/start", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		jsonResponse(t, w, `{"status":"started"}`)
	}))

	realtime := &fakeRefetcher{}
	svc.BindRealtime(realtime)

	req := scheduler.StartRequest{
		DayStart:          mustParseTime(t, "2025-01-15T08:00"),
		DayEnd:            mustParseTime(t, "2025-01-15T16:00"),
		CompressToSeconds: 120,
		TickSeconds:       0.2,
	}
	if err := svc.StartSimulation(context.Background(), req); err != nil {
		t.Fatalf("StartSimulation: %v", err)
	}

	want := `{"day_start":"2025-01-15T08:00","day_end":"2025-01-15T16:00","compress_to_seconds":120,"tick_seconds":0.2}`
	if gotBody != want {
		t.Errorf("body = %s, want %s", gotBody, want)
	}

	items := toasts.Items()
	if len(items) != 1 || items[0].Kind != notify.KindSuccess || items[0].Title != "Simulation started" {
		t.Errorf("toasts = %+v, want one success toast", items)
	}

	if got := realtime.calls.Load(); got != 1 {
		t.Errorf("realtime refetched %d times, want 1", got)
	}
}

func TestStartSimulationAlreadyRunning(t *testing.T) {
	t.Parallel()

	svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, `{"status":"already_running"}`)
	}))

	realtime := &fakeRefetcher{}
	svc.BindRealtime(realtime)

	if err := svc.StartSimulation(context.Background(), scheduler.StartRequest{}); err != nil {
		t.Fatalf("StartSimulation: %v", err)
	}

	items := toasts.Items()
	if len(items) != 1 || items[0].Kind != notify.KindWarning || items[0].Title != "Simulation already running" {
		t.Errorf("toasts = %+v, want one already-running warning", items)
	}
	if got := realtime.calls.Load(); got != 1 {
		t.Errorf("realtime refetched %d times, want 1", got)
	}
}

func TestStartSimulationFailureLeavesRefetcherAlone(t *testing.T) {
	t.Parallel()

	svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"day_end must be after day_start"}`)
	}))

	realtime := &fakeRefetcher{}
	svc.BindRealtime(realtime)

	if err := svc.StartSimulation(context.Background(), scheduler.StartRequest{}); err == nil {
		t.Fatal("StartSimulation succeeded, want error")
	}

	items := toasts.Items()
	if len(items) != 1 || items[0].Kind != notify.KindError || items[0].Title != "Start failed" {
		t.Errorf("toasts = %+v, want one error toast", items)
	}
	if got := realtime.calls.Load(); got != 0 {
		t.Errorf("realtime refetched %d times after failure, want 0", got)
	}
}

func TestStopSimulationNotRunning(t *testing.T) {
	t.Parallel()

	svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/realtime/stop" {
			t.Errorf("request = %s %s, want POST /realtime/stop", r.Method, r.URL.Path)
		}
		jsonResponse(t, w, `{"status":"not_running"}`)
	}))

	if err := svc.StopSimulation(context.Background()); err != nil {
		t.Fatalf("StopSimulation: %v", err)
	}

	items := toasts.Items()
	if len(items) != 1 || items[0].Kind != notify.KindWarning || items[0].Title != "Simulation not running" {
		t.Errorf("toasts = %+v, want one not-running warning", items)
	}
}

func TestSendEventNow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		response  string
		wantKind  notify.Kind
		wantTitle string
		wantMsg   string
	}{
		{
			name:      "accepted",
			response:  `{"status":"ok","replanned":false}`,
			wantKind:  notify.KindSuccess,
			wantTitle: "Event accepted",
			wantMsg:   "",
		},
		{
			name:      "accepted with replan",
			response:  `{"status":"ok","replanned":true,"replan_reason":"breakdown >= threshold"}`,
			wantKind:  notify.KindSuccess,
			wantTitle: "Event accepted",
			wantMsg:   "plan recomputed: breakdown >= threshold",
		},
		{
			name:      "ignored",
			response:  `{"status":"ignored","reason":"machine already down"}`,
			wantKind:  notify.KindWarning,
			wantTitle: "Event ignored",
			wantMsg:   "machine already down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/events/now" {
					t.Errorf("request = %s %s, want POST /events/now", r.Method, r.URL.Path)
				}
				jsonResponse(t, w, tt.response)
			}))

			ev := scheduler.ImmediateEvent{Type: scheduler.EventBreakdownStart, Value: "mechanical"}
			if err := svc.SendEventNow(context.Background(), ev); err != nil {
				t.Fatalf("SendEventNow: %v", err)
			}

			items := toasts.Items()
			if len(items) != 1 {
				t.Fatalf("len(toasts) = %d, want 1", len(items))
			}
			toast := items[0]
			if toast.Kind != tt.wantKind || toast.Title != tt.wantTitle || toast.Message != tt.wantMsg {
				t.Errorf("toast = %+v, want kind=%s title=%q message=%q", toast, tt.wantKind, tt.wantTitle, tt.wantMsg)
			}
		})
	}
}

func TestCreateWorkOrderRefetchesOrdersAndPlan(t *testing.T) {
	t.Parallel()

	svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/work-orders" {
			t.Errorf("request = %s %s, want POST /work-orders", r.Method, r.URL.Path)
		}
		jsonResponse(t, w, `{"of_id":"OF-0042","format":"F3","priority":1,"work_nominal_min":60}`)
	}))

	orders := &fakeRefetcher{}
	plan := &fakeRefetcher{}
	svc.BindOrders(orders)
	svc.BindPlan(plan)

	req := scheduler.CreateWorkOrderRequest{OFID: "OF-0042", Format: "F3", Priority: 1, WorkNominalMin: 60}
	if err := svc.CreateWorkOrder(context.Background(), req); err != nil {
		t.Fatalf("CreateWorkOrder: %v", err)
	}

	items := toasts.Items()
	if len(items) != 1 || items[0].Kind != notify.KindSuccess || items[0].Message != "OF-0042" {
		t.Errorf("toasts = %+v, want one success toast naming the order", items)
	}
	if got := orders.calls.Load(); got != 1 {
		t.Errorf("orders refetched %d times, want 1", got)
	}
	if got := plan.calls.Load(); got != 1 {
		t.Errorf("plan refetched %d times, want 1", got)
	}
}

func TestRecomputePlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		response  string
		wantKind  notify.Kind
		wantTitle string
		wantMsg   string
	}{
		{
			name:      "changed",
			response:  `{"ok":true,"changed":true,"strategy":"FORMAT_PRIORITY","after":["B","A","C"]}`,
			wantKind:  notify.KindSuccess,
			wantTitle: "Plan recomputed",
			wantMsg:   "3 orders reordered",
		},
		{
			name:      "unchanged with reason",
			response:  `{"ok":true,"changed":false,"strategy":"FORMAT_PRIORITY","reason":"already optimal"}`,
			wantKind:  notify.KindWarning,
			wantTitle: "Plan unchanged",
			wantMsg:   "already optimal",
		},
		{
			name:      "unchanged without reason",
			response:  `{"ok":true,"changed":false,"strategy":"FORMAT_PRIORITY"}`,
			wantKind:  notify.KindWarning,
			wantTitle: "Plan unchanged",
			wantMsg:   "queue order unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, toasts := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("strategy"); got != "FORMAT_PRIORITY" {
					t.Errorf("strategy query = %q, want FORMAT_PRIORITY", got)
				}
				jsonResponse(t, w, tt.response)
			}))

			plan := &fakeRefetcher{}
			svc.BindPlan(plan)

			if err := svc.RecomputePlan(context.Background(), "FORMAT_PRIORITY"); err != nil {
				t.Fatalf("RecomputePlan: %v", err)
			}

			items := toasts.Items()
			if len(items) != 1 {
				t.Fatalf("len(toasts) = %d, want 1", len(items))
			}
			toast := items[0]
			if toast.Kind != tt.wantKind || toast.Title != tt.wantTitle || toast.Message != tt.wantMsg {
				t.Errorf("toast = %+v, want kind=%s title=%q message=%q", toast, tt.wantKind, tt.wantTitle, tt.wantMsg)
			}
		})
	}
}

func mustParseTime(t *testing.T, s string) scheduler.Time {
	t.Helper()
	parsed, err := scheduler.ParseTime(s)
	if err != nil {
		t.Fatalf("ParseTime(%q): %v", s, err)
	}
	return parsed
}
