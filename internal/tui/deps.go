package tui

import (
	"log/slog"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/ops"
)

type Deps struct {
	Logger  *slog.Logger
	Client  *scheduler.Client
	Ops     *ops.Service
	Toasts  *notify.Queue
	Pollers *Pollers

	// StartReq is the day window submitted when the operator hits start.
	StartReq scheduler.StartRequest
}
