package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/ops"
)

func startCmd(svc *ops.Service, req scheduler.StartRequest) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: svc.StartSimulation(context.Background(), req)}
	}
}

func stopCmd(svc *ops.Service) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: svc.StopSimulation(context.Background())}
	}
}

func sendEventNowCmd(svc *ops.Service, eventType, value string) tea.Cmd {
	return func() tea.Msg {
		ev := scheduler.ImmediateEvent{Type: eventType, Value: value}
		return ActionDoneMsg{Err: svc.SendEventNow(context.Background(), ev)}
	}
}

func recomputeCmd(svc *ops.Service, strategy string) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: svc.RecomputePlan(context.Background(), strategy)}
	}
}

func refetchAllCmd(pollers *Pollers) tea.Cmd {
	return func() tea.Msg {
		pollers.RefetchAll()
		return nil
	}
}
