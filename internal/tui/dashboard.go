package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/tui/components/spark"
	"github.com/tecpap/lineview/internal/tui/theme"
)

const (
	planRows     = 8
	eventRows    = 6
	sparkWidth   = 24
	sparkHeight  = 3
	barWidth     = 20
	paneInterior = 44
)

func (m *Model) DashboardView() string {
	left := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.kpiView(),
		m.eventsView(),
	)

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.planView(),
		m.ordersView(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.footerView(),
	)

	placed := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	if toasts := m.toastsView(); toasts != "" {
		overlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Right,
			lipgloss.Top,
			lipgloss.NewStyle().PaddingRight(2).PaddingTop(1).Render(toasts),
		)
		placed = overlayStrings(placed, overlay)
	}

	return placed
}

func (m *Model) headerView() string {
	title := m.theme.Accent().Bold(true).Render("LINEVIEW")

	rt := m.state.Realtime.Data
	status := m.theme.Dim().Render("connecting…")
	clock := ""
	if rt != nil {
		if rt.Runner.Running {
			status = lipgloss.NewStyle().Foreground(theme.ColorRunning).Render("● running")
		} else {
			status = m.theme.Dim().Render("○ stopped")
		}
		clock = m.theme.Base().Render(rt.Engine.Now.String())
		if rt.Engine.IsDown {
			status += "  " + lipgloss.NewStyle().Foreground(theme.ColorDown).Bold(true).Render("⚠ DOWN")
		}
	}

	line := title + "  " + status + "  " + clock
	if m.state.Realtime.Loading {
		line += "  " + m.theme.Dim().Render("refreshing…")
	}
	if err := m.state.Realtime.Err; err != nil {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.ColorDown).Render("backend error: "+err.Error())
	}

	return m.pane("", line)
}

func (m *Model) kpiView() string {
	rt := m.state.Realtime.Data
	if rt == nil {
		return m.pane("KPI", m.theme.Dim().Render("no data yet"))
	}

	kpi := rt.Engine.KPI
	total := kpi.ProducingMin + kpi.DowntimeMin + kpi.StoppedMin + kpi.IdleMin

	var utilization float64
	if total > 0 {
		utilization = float64(kpi.ProducingMin) / float64(total)
	}

	lines := []string{
		fmt.Sprintf("producing %4dm   downtime %4dm", kpi.ProducingMin, kpi.DowntimeMin),
		fmt.Sprintf("stopped   %4dm   idle     %4dm", kpi.StoppedMin, kpi.IdleMin),
		fmt.Sprintf("completed %4d    queue    %4d", kpi.CompletedCount, rt.Engine.QueueSize),
		"",
		"utilization " + spark.Bar(utilization, barWidth, theme.ColorRunning, theme.ColorBgLight) +
			fmt.Sprintf(" %3.0f%%", utilization*100),
	}

	if trend := m.producingTrend(); len(trend) > 1 {
		lines = append(lines,
			"",
			m.theme.Dim().Render("producing min / hour"),
			spark.Line(trend, sparkWidth, sparkHeight, theme.ColorKPI),
		)
	}

	return m.pane("KPI", strings.Join(lines, "\n"))
}

// producingTrend converts the cumulative producing counter of the hourly
// reports into per-hour deltas.
func (m *Model) producingTrend() []int {
	reports := m.state.Hourly.Data
	if reports == nil {
		return nil
	}

	var trend []int
	prev := 0
	for _, r := range *reports {
		delta := r.KPI.ProducingMin - prev
		if delta < 0 {
			delta = 0
		}
		trend = append(trend, delta)
		prev = r.KPI.ProducingMin
	}
	return trend
}

func (m *Model) planView() string {
	items := m.state.Plan.Data
	if items == nil {
		return m.pane("PLAN", m.theme.Dim().Render("no data yet"))
	}

	header := m.theme.Dim().Render(fmt.Sprintf("%-10s %-4s %-17s %5s %5s", "OF", "FMT", "START", "SETUP", "WORK"))
	lines := []string{header}

	style := lipgloss.NewStyle().Foreground(theme.ColorPlan)
	for i, item := range *items {
		if i >= planRows {
			lines = append(lines, m.theme.Dim().Render(fmt.Sprintf("… %d more", len(*items)-planRows)))
			break
		}
		lines = append(lines, style.Render(fmt.Sprintf(
			"%-10s %-4s %-17s %4dm %4dm",
			item.OFID, item.Format, item.Start.String(), item.SetupMin, item.WorkNominalMin,
		)))
	}

	if err := m.state.Plan.Err; err != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ColorDown).Render("stale: "+err.Error()))
	}

	return m.pane("PLAN", strings.Join(lines, "\n"))
}

func (m *Model) ordersView() string {
	orders := m.state.Orders.Data
	if orders == nil {
		return m.pane("WORK ORDERS", m.theme.Dim().Render("no data yet"))
	}

	lines := []string{m.theme.Base().Render(fmt.Sprintf("%d queued", len(*orders)))}
	for i, order := range *orders {
		if i >= 4 {
			break
		}
		due := ""
		if order.DueDate != nil {
			due = order.DueDate.String()
		}
		lines = append(lines, m.theme.Dim().Render(fmt.Sprintf(
			"%-10s %-4s p%d due %s", order.OFID, order.Format, order.Priority, due,
		)))
	}

	return m.pane("WORK ORDERS", strings.Join(lines, "\n"))
}

func (m *Model) eventsView() string {
	entries := m.state.EventLog.Data
	if entries == nil {
		return m.pane("EVENTS", m.theme.Dim().Render("inactive while stopped"))
	}

	style := lipgloss.NewStyle().Foreground(theme.ColorEventLog)
	var lines []string
	log := *entries
	start := 0
	if len(log) > eventRows {
		start = len(log) - eventRows
	}
	for _, entry := range log[start:] {
		mark := " "
		if entry.Replanned {
			mark = "↻"
		}
		if entry.Status == scheduler.EventStatusIgnored {
			mark = "✗"
		}
		lines = append(lines, style.Render(fmt.Sprintf(
			"%s %s %-15s %s", entry.ReceivedAt.String(), mark, entry.Type, entry.Status,
		)))
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.Dim().Render("no events yet"))
	}

	return m.pane("EVENTS", strings.Join(lines, "\n"))
}

func (m *Model) toastsView() string {
	if len(m.state.Toasts) == 0 {
		return ""
	}

	var rendered []string
	for _, toast := range m.state.Toasts {
		var c lipgloss.Style
		switch toast.Kind {
		case notify.KindSuccess:
			c = lipgloss.NewStyle().Foreground(theme.ColorRunning)
		case notify.KindWarning:
			c = lipgloss.NewStyle().Foreground(theme.ColorToastWarn)
		default:
			c = lipgloss.NewStyle().Foreground(theme.ColorDown)
		}

		text := toast.Title
		if toast.Message != "" {
			text += ": " + toast.Message
		}
		rendered = append(rendered, c.Render("▌ "+text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Render(strings.Join(rendered, "\n"))
}

func (m *Model) footerView() string {
	keys := []string{"s start", "x stop", "b breakdown", "u urgent", "p replan", "r refresh", "q quit"}
	return m.theme.Dim().Render(strings.Join(keys, "  ·  "))
}

func (m *Model) pane(title, content string) string {
	var header string
	if title != "" {
		header = m.theme.Accent().Bold(true).Render(title) + "\n"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Width(paneInterior).
		Render(header + content)
}

func overlayStrings(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	maxLines := max(len(baseLines), len(overlayLines))

	result := make([]string, maxLines)
	for i := range maxLines {
		var baseLine, overlayLine string
		if i < len(baseLines) {
			baseLine = baseLines[i]
		}
		if i < len(overlayLines) {
			overlayLine = overlayLines[i]
		}

		if strings.TrimSpace(overlayLine) == "" {
			result[i] = baseLine
			continue
		}
		result[i] = mergeLine(baseLine, overlayLine)
	}

	return strings.Join(result, "\n")
}

func mergeLine(base, overlay string) string {
	baseRunes := []rune(base)
	overlayRunes := []rune(overlay)

	maxLen := max(len(baseRunes), len(overlayRunes))

	merged := make([]rune, maxLen)
	for i := range maxLen {
		baseChar, overlayChar := ' ', ' '
		if i < len(baseRunes) {
			baseChar = baseRunes[i]
		}
		if i < len(overlayRunes) {
			overlayChar = overlayRunes[i]
		}

		if overlayChar != ' ' {
			merged[i] = overlayChar
		} else {
			merged[i] = baseChar
		}
	}

	return string(merged)
}
