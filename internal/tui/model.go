package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/poll"
	"github.com/tecpap/lineview/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

// DashboardState mirrors the latest published state of every poller plus
// the toast queue. The model never fetches anything itself; it only renders
// what the pollers push through the bridge.
type DashboardState struct {
	Realtime poll.State[scheduler.RealtimeState]
	EventLog poll.State[[]scheduler.EventResponse]
	Hourly   poll.State[[]scheduler.HourlyReport]
	Plan     poll.State[[]scheduler.PlanItem]
	Orders   poll.State[[]scheduler.WorkOrder]
	Toasts   []notify.Notification
}

type Model struct {
	ready  bool
	width  int
	height int
	theme  theme.Theme
	deps   Deps
	state  DashboardState
}

func New(deps Deps) Model {
	return Model{
		theme: theme.New(),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.deps.Pollers.Close()
			return m, tea.Quit
		case "s":
			return m, startCmd(m.deps.Ops, m.deps.StartReq)
		case "x":
			return m, stopCmd(m.deps.Ops)
		case "b":
			return m, sendEventNowCmd(m.deps.Ops, m.breakdownEventType(), "")
		case "u":
			return m, sendEventNowCmd(m.deps.Ops, scheduler.EventUrgentOrder, "")
		case "p":
			return m, recomputeCmd(m.deps.Ops, "FORMAT_PRIORITY")
		case "r":
			return m, refetchAllCmd(m.deps.Pollers)
		}

	case RealtimeMsg:
		m.state.Realtime = msg.State
	case EventLogMsg:
		m.state.EventLog = msg.State
	case HourlyMsg:
		m.state.Hourly = msg.State
	case PlanMsg:
		m.state.Plan = msg.State
	case OrdersMsg:
		m.state.Orders = msg.State
	case ToastsMsg:
		m.state.Toasts = msg.Items

	case ActionDoneMsg:
		// outcome already surfaced through the toast queue
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(m.DashboardView())
	return view
}

// breakdownEventType toggles: a machine already down gets the end event.
func (m *Model) breakdownEventType() string {
	if rt := m.state.Realtime.Data; rt != nil && rt.Engine.IsDown {
		return scheduler.EventBreakdownEnd
	}
	return scheduler.EventBreakdownStart
}
