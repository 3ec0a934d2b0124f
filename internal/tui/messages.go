package tui

import (
	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/poll"
)

type RealtimeMsg struct {
	State poll.State[scheduler.RealtimeState]
}

type EventLogMsg struct {
	State poll.State[[]scheduler.EventResponse]
}

type HourlyMsg struct {
	State poll.State[[]scheduler.HourlyReport]
}

type PlanMsg struct {
	State poll.State[[]scheduler.PlanItem]
}

type OrdersMsg struct {
	State poll.State[[]scheduler.WorkOrder]
}

type ToastsMsg struct {
	Items []notify.Notification
}

// ActionDoneMsg reports a one-shot action's outcome; the user-visible
// feedback already went through the notification queue.
type ActionDoneMsg struct {
	Err error
}
