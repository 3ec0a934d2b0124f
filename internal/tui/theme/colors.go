package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent    = lipgloss.Color("#00F19F") // highlights, key hints
	ColorRunning   = lipgloss.Color("#16EC06") // machine producing
	ColorIdle      = lipgloss.Color("#FFDE00") // machine idle / stopped
	ColorDown      = lipgloss.Color("#FF0026") // breakdown
	ColorPlan      = lipgloss.Color("#0093E7") // plan / schedule data
	ColorEventLog  = lipgloss.Color("#67AEE6") // event log entries
	ColorKPI       = lipgloss.Color("#7BA1BB") // KPI figures
	ColorToastWarn = lipgloss.Color("#FFB000")
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)
