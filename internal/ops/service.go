// Package ops wraps the one-shot mutating backend actions: each action
// pushes the operator-facing notification for its outcome and triggers the
// manual refetch of whichever live view it invalidated. Failures surface as
// a toast and leave prior state untouched; there is no retry.
package ops

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/xslog"
)

// Refetcher is the slice of a poller an action needs: force one manual
// fetch now.
type Refetcher interface {
	Refetch()
}

type Service struct {
	client *scheduler.Client
	toasts *notify.Queue
	logger *slog.Logger

	mu       sync.Mutex
	realtime Refetcher
	orders   Refetcher
	plan     Refetcher
}

func NewService(client *scheduler.Client, toasts *notify.Queue, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		toasts: toasts,
		logger: logger,
	}
}

// BindRealtime attaches the runner/engine state poller refetched after
// start/stop.
func (s *Service) BindRealtime(r Refetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.realtime = r
}

func (s *Service) BindOrders(r Refetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = r
}

func (s *Service) BindPlan(r Refetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = r
}

func (s *Service) StartSimulation(ctx context.Context, req scheduler.StartRequest) error {
	resp, err := s.client.Realtime.Start(ctx, req)
	if err != nil {
		s.toasts.Error("Start failed", err.Error())
		return err
	}

	switch resp.Status {
	case scheduler.StatusAlreadyRunning:
		s.toasts.Warning("Simulation already running", "")
	default:
		s.toasts.Success("Simulation started", "")
	}
	if resp.Warning != "" {
		s.toasts.Warning("Started with warning", resp.Warning)
	}

	s.logger.InfoContext(ctx, "simulation started",
		slog.String("status", resp.Status),
		slog.String("day_start", req.DayStart.String()),
		slog.String("day_end", req.DayEnd.String()))

	s.refetch(s.realtimeRefetcher())
	return nil
}

func (s *Service) StopSimulation(ctx context.Context) error {
	resp, err := s.client.Realtime.Stop(ctx)
	if err != nil {
		s.toasts.Error("Stop failed", err.Error())
		return err
	}

	if resp.Status == scheduler.StatusNotRunning {
		s.toasts.Warning("Simulation not running", "")
	} else {
		s.toasts.Success("Simulation stopped", "")
	}

	s.logger.InfoContext(ctx, "simulation stopped", slog.String("status", resp.Status))

	s.refetch(s.realtimeRefetcher())
	return nil
}

func (s *Service) SendEvent(ctx context.Context, ev scheduler.ScheduledEvent) error {
	resp, err := s.client.Events.Send(ctx, ev)
	if err != nil {
		s.toasts.Error("Event failed", err.Error())
		return err
	}
	s.notifyEvent(ctx, ev.Type, resp)
	return nil
}

func (s *Service) SendEventNow(ctx context.Context, ev scheduler.ImmediateEvent) error {
	resp, err := s.client.Events.SendNow(ctx, ev)
	if err != nil {
		s.toasts.Error("Event failed", err.Error())
		return err
	}
	s.notifyEvent(ctx, ev.Type, resp)
	return nil
}

func (s *Service) CreateWorkOrder(ctx context.Context, req scheduler.CreateWorkOrderRequest) error {
	order, err := s.client.WorkOrders.Create(ctx, req)
	if err != nil {
		s.toasts.Error("Work order failed", err.Error())
		return err
	}

	s.toasts.Success("Work order created", order.OFID)
	s.logger.InfoContext(ctx, "work order created", xslog.OrderID(order.OFID))

	s.refetch(s.ordersRefetcher())
	s.refetch(s.planRefetcher())
	return nil
}

func (s *Service) RecomputePlan(ctx context.Context, strategy string) error {
	result, err := s.client.Plan.Recompute(ctx, strategy)
	if err != nil {
		s.toasts.Error("Recompute failed", err.Error())
		return err
	}

	if result.Changed {
		s.toasts.Success("Plan recomputed", fmt.Sprintf("%d orders reordered", len(result.After)))
	} else {
		msg := result.Reason
		if msg == "" {
			msg = "queue order unchanged"
		}
		s.toasts.Warning("Plan unchanged", msg)
	}

	s.logger.InfoContext(ctx, "plan recomputed",
		xslog.Strategy(result.Strategy),
		slog.Bool("changed", result.Changed))

	s.refetch(s.planRefetcher())
	return nil
}

func (s *Service) notifyEvent(ctx context.Context, eventType string, resp *scheduler.EventResponse) {
	switch resp.Status {
	case scheduler.EventStatusIgnored:
		s.toasts.Warning("Event ignored", resp.Reason)
	default:
		msg := ""
		if resp.Replanned {
			msg = "plan recomputed: " + resp.ReplanReason
		}
		s.toasts.Success("Event accepted", msg)
	}

	s.logger.InfoContext(ctx, "event submitted",
		xslog.EventType(eventType),
		slog.String("status", resp.Status),
		slog.Bool("replanned", resp.Replanned))
}

func (s *Service) realtimeRefetcher() Refetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.realtime
}

func (s *Service) ordersRefetcher() Refetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders
}

func (s *Service) planRefetcher() Refetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

func (s *Service) refetch(r Refetcher) {
	if r != nil {
		r.Refetch()
	}
}
