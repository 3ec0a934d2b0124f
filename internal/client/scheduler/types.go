package scheduler

// Runner statuses returned by /realtime/start and /realtime/stop.
const (
	StatusStarted        = "started"
	StatusAlreadyRunning = "already_running"
	StatusStopped        = "stopped"
	StatusNotRunning     = "not_running"
)

// Event statuses returned by /events and /events/now.
const (
	EventStatusOK      = "ok"
	EventStatusIgnored = "ignored"
)

// Event types the engine understands.
const (
	EventShiftStart     = "SHIFT_START"
	EventShiftStop      = "SHIFT_STOP"
	EventSpeedChange    = "SPEED_CHANGE"
	EventUrgentOrder    = "URGENT_ORDER"
	EventBreakdownStart = "BREAKDOWN_START"
	EventBreakdownEnd   = "BREAKDOWN_END"
)

type CurrentJob struct {
	OFID     string `json:"of_id"`
	Format   string `json:"format"`
	DueDate  Time   `json:"due_date"`
	Priority int    `json:"priority"`
}

type BreakdownState struct {
	DownStartTime            *Time  `json:"down_start_time"`
	DownReason               string `json:"down_reason"`
	LastBreakdownDurationMin *int   `json:"last_breakdown_duration_min"`
	ReplanThresholdMin       int    `json:"replan_threshold_min"`
}

type KPI struct {
	DowntimeMin    int `json:"downtime_min"`
	StoppedMin     int `json:"stopped_min"`
	IdleMin        int `json:"idle_min"`
	ProducingMin   int `json:"producing_min"`
	CompletedCount int `json:"completed_count"`
}

// EngineState is the backend engine snapshot served by GET /state and
// embedded in GET /realtime/state.
type EngineState struct {
	Now                     Time           `json:"now"`
	IsRunning               bool           `json:"is_running"`
	IsDown                  bool           `json:"is_down"`
	SpeedFactor             float64        `json:"speed_factor"`
	CurrentFormat           string         `json:"current_format"`
	CurrentJob              *CurrentJob    `json:"current_job"`
	RemainingSetupMin       int            `json:"remaining_setup_min"`
	RemainingWorkNominalMin int            `json:"remaining_work_nominal_min"`
	QueueSize               int            `json:"queue_size"`
	PoolRemaining           int            `json:"pool_remaining"`
	Breakdown               BreakdownState `json:"breakdown"`
	KPI                     KPI            `json:"kpi"`
}

// RunnerState mirrors the "runner" block of GET /realtime/state. Config
// fields are null until the first start.
type RunnerState struct {
	Running           bool     `json:"running"`
	DayStart          *Time    `json:"day_start"`
	DayEnd            *Time    `json:"day_end"`
	CompressToSeconds *int     `json:"compress_to_seconds"`
	TickSeconds       *float64 `json:"tick_seconds"`
	NextReportTime    *Time    `json:"next_report_time"`
}

type RealtimeState struct {
	Runner RunnerState `json:"runner"`
	Engine EngineState `json:"engine"`
}

type MachineSnapshot struct {
	IsRunning     bool    `json:"is_running"`
	IsDown        bool    `json:"is_down"`
	SpeedFactor   float64 `json:"speed_factor"`
	CurrentFormat string  `json:"current_format"`
	CurrentJobID  *string `json:"current_job_id"`
}

type HourlyReport struct {
	Time          Time            `json:"time"`
	Machine       MachineSnapshot `json:"machine"`
	QueueSize     int             `json:"queue_size"`
	PoolRemaining int             `json:"pool_remaining"`
	KPI           KPI             `json:"kpi"`
	Breakdown     BreakdownState  `json:"breakdown"`
}

type StartRequest struct {
	DayStart          Time    `json:"day_start"`
	DayEnd            Time    `json:"day_end"`
	CompressToSeconds int     `json:"compress_to_seconds"`
	TickSeconds       float64 `json:"tick_seconds"`
}

type StartResponse struct {
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

type StopResponse struct {
	Status string `json:"status"`
}

type ScheduledEvent struct {
	Timestamp Time   `json:"timestamp"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

type ImmediateEvent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EventResponse is the engine's event-log entry, returned both from event
// submission and from GET /events/log.
type EventResponse struct {
	ReceivedAt           Time   `json:"received_at"`
	Source               string `json:"source"`
	EngineNowBefore      Time   `json:"engine_now_before"`
	EventTimestamp       Time   `json:"event_timestamp"`
	Type                 string `json:"type"`
	Value                string `json:"value"`
	Status               string `json:"status"`
	Reason               string `json:"reason"`
	LateApplied          bool   `json:"late_applied"`
	Replanned            bool   `json:"replanned"`
	ReplanReason         string `json:"replan_reason"`
	BreakdownDurationMin *int   `json:"breakdown_duration_min"`
	EngineNowAfter       Time   `json:"engine_now_after"`
}

type WorkOrder struct {
	OFID           string `json:"of_id"`
	Format         string `json:"format"`
	DueDate        *Time  `json:"due_date,omitempty"`
	Priority       int    `json:"priority"`
	WorkNominalMin *int   `json:"work_nominal_min"`
}

type CreateWorkOrderRequest struct {
	OFID           string `json:"of_id"`
	Format         string `json:"format"`
	DueDate        *Time  `json:"due_date,omitempty"`
	Priority       int    `json:"priority"`
	WorkNominalMin int    `json:"work_nominal_min"`
}

type PlanItem struct {
	OFID           string `json:"of_id"`
	Format         string `json:"format"`
	Start          Time   `json:"start"`
	End            Time   `json:"end"`
	SetupMin       int    `json:"setup_min"`
	WorkNominalMin int    `json:"work_nominal_min"`
	Note           string `json:"note"`
}

type RecomputeResult struct {
	OK               bool     `json:"ok"`
	Changed          bool     `json:"changed"`
	Strategy         string   `json:"strategy"`
	Reason           string   `json:"reason,omitempty"`
	TotalSetupMinEst int      `json:"total_setup_min_est"`
	Before           []string `json:"before"`
	After            []string `json:"after"`
	PID              *int     `json:"pid,omitempty"`
}
