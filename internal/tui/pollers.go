package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/config"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/ops"
	"github.com/tecpap/lineview/internal/poll"
	"github.com/tecpap/lineview/internal/xslog"
)

// Pollers owns the recurring fetches behind the dashboard. The realtime
// poller is always on; the event log and hourly reports only tick while the
// runner reports itself running, derived from the realtime poller's data.
type Pollers struct {
	Realtime *poll.Poller[scheduler.RealtimeState]
	EventLog *poll.Poller[[]scheduler.EventResponse]
	Hourly   *poll.Poller[[]scheduler.HourlyReport]
	Plan     *poll.Poller[[]scheduler.PlanItem]
	Orders   *poll.Poller[[]scheduler.WorkOrder]
}

const (
	eventLogLimit = 50
	planLimit     = 30
	ordersLimit   = 200
)

func NewPollers(cfg config.Config, client *scheduler.Client, svc *ops.Service, logger *slog.Logger) *Pollers {
	// poll failures are logged, not toasted: the error state stays visible
	// in the view next to the last-known-good data, and a toast per failed
	// tick would flood the queue
	onError := func(name string) func(error) {
		return func(err error) {
			logger.Warn("poll failed", slog.String("poller", name), xslog.Error(err))
		}
	}

	p := &Pollers{
		Realtime: poll.New(func(ctx context.Context) (scheduler.RealtimeState, error) {
			state, err := client.Realtime.State(ctx)
			if err != nil {
				return scheduler.RealtimeState{}, err
			}
			return *state, nil
		}, cfg.RealtimeInterval, poll.WithLogger(logger), poll.WithOnError(onError("realtime"))),

		EventLog: poll.New(func(ctx context.Context) ([]scheduler.EventResponse, error) {
			return client.Events.Log(ctx, eventLogLimit)
		}, cfg.EventLogInterval, poll.WithEnabled(false), poll.WithLogger(logger), poll.WithOnError(onError("event_log"))),

		Hourly: poll.New(func(ctx context.Context) ([]scheduler.HourlyReport, error) {
			return client.Realtime.Hourly(ctx)
		}, cfg.HourlyInterval, poll.WithEnabled(false), poll.WithLogger(logger), poll.WithOnError(onError("hourly"))),

		Plan: poll.New(func(ctx context.Context) ([]scheduler.PlanItem, error) {
			return client.Plan.Preview(ctx, planLimit)
		}, cfg.PlanInterval, poll.WithLogger(logger), poll.WithOnError(onError("plan"))),

		Orders: poll.New(func(ctx context.Context) ([]scheduler.WorkOrder, error) {
			return client.WorkOrders.List(ctx, ordersLimit)
		}, cfg.OrdersInterval, poll.WithLogger(logger), poll.WithOnError(onError("orders"))),
	}

	running := func(s scheduler.RealtimeState) bool { return s.Runner.Running }
	poll.BindEnabled(p.Realtime, p.EventLog, running)
	poll.BindEnabled(p.Realtime, p.Hourly, running)

	svc.BindRealtime(p.Realtime)
	svc.BindOrders(p.Orders)
	svc.BindPlan(p.Plan)

	return p
}

func (p *Pollers) Close() {
	p.Realtime.Close()
	p.EventLog.Close()
	p.Hourly.Close()
	p.Plan.Close()
	p.Orders.Close()
}

// RefetchAll forces a manual refresh of every view.
func (p *Pollers) RefetchAll() {
	p.Realtime.Refetch()
	p.Plan.Refetch()
	p.Orders.Refetch()
	if p.EventLog.Enabled() {
		p.EventLog.Refetch()
	}
	if p.Hourly.Enabled() {
		p.Hourly.Refetch()
	}
}

// Bridge forwards poller and toast transitions into the bubbletea program.
func Bridge(program *tea.Program, deps Deps) {
	deps.Pollers.Realtime.Subscribe(func(s poll.State[scheduler.RealtimeState]) {
		program.Send(RealtimeMsg{State: s})
	})
	deps.Pollers.EventLog.Subscribe(func(s poll.State[[]scheduler.EventResponse]) {
		program.Send(EventLogMsg{State: s})
	})
	deps.Pollers.Hourly.Subscribe(func(s poll.State[[]scheduler.HourlyReport]) {
		program.Send(HourlyMsg{State: s})
	})
	deps.Pollers.Plan.Subscribe(func(s poll.State[[]scheduler.PlanItem]) {
		program.Send(PlanMsg{State: s})
	})
	deps.Pollers.Orders.Subscribe(func(s poll.State[[]scheduler.WorkOrder]) {
		program.Send(OrdersMsg{State: s})
	})
	deps.Toasts.Subscribe(func(items []notify.Notification) {
		program.Send(ToastsMsg{Items: items})
	})
}
