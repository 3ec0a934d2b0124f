package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/config"
	"github.com/tecpap/lineview/internal/notify"
	"github.com/tecpap/lineview/internal/ops"
	"github.com/tecpap/lineview/internal/tui"
	"github.com/tecpap/lineview/internal/xslog"
)

func tuiCmd() *cobra.Command {
	var (
		dayStart string
		dayEnd   string
		compress int
		tick     float64
	)

	cmd := &cobra.Command{
		Use:   "lineview",
		Short: "Production scheduler dashboard in your terminal",
		Long:  "Full-screen terminal UI for observing and steering the scheduler backend: start/stop the compressed simulation, inject events, watch live KPIs and browse the generated plan.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			startReq, err := buildStartRequest(dayStart, dayEnd, compress, tick)
			if err != nil {
				return err
			}

			client := scheduler.New(cfg.BackendURL,
				scheduler.WithLogger(logger),
				scheduler.WithTimeout(cfg.HTTPTimeout))

			toasts := notify.New()
			svc := ops.NewService(client, toasts, logger)
			pollers := tui.NewPollers(cfg, client, svc, logger)
			defer pollers.Close()

			deps := tui.Deps{
				Logger:   logger,
				Client:   client,
				Ops:      svc,
				Toasts:   toasts,
				Pollers:  pollers,
				StartReq: startReq,
			}

			model := tui.New(deps)
			p := tea.NewProgram(&model)
			tui.Bridge(p, deps)

			if _, err := p.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dayStart, "day-start", "", "simulated day start (2006-01-02T15:04), default today 06:00")
	cmd.Flags().StringVar(&dayEnd, "day-end", "", "simulated day end (2006-01-02T15:04), default today 22:00")
	cmd.Flags().IntVar(&compress, "compress", 600, "wall-clock seconds the simulated day is compressed into")
	cmd.Flags().Float64Var(&tick, "tick", 0.5, "runner tick in wall-clock seconds")

	return cmd
}

func buildStartRequest(dayStart, dayEnd string, compress int, tick float64) (scheduler.StartRequest, error) {
	var (
		today = time.Now().Truncate(24 * time.Hour)
		start = scheduler.NewTime(today.Add(6 * time.Hour))
		end   = scheduler.NewTime(today.Add(22 * time.Hour))
	)

	if dayStart != "" {
		parsed, err := scheduler.ParseTime(dayStart)
		if err != nil {
			return scheduler.StartRequest{}, err
		}
		start = parsed
	}
	if dayEnd != "" {
		parsed, err := scheduler.ParseTime(dayEnd)
		if err != nil {
			return scheduler.StartRequest{}, err
		}
		end = parsed
	}

	if !end.After(start.Time) {
		return scheduler.StartRequest{}, fmt.Errorf("day end %s is not after day start %s", end, start)
	}

	return scheduler.StartRequest{
		DayStart:          start,
		DayEnd:            end,
		CompressToSeconds: compress,
		TickSeconds:       tick,
	}, nil
}

// newLogger writes JSON logs to LOG_FILE when set; the TUI owns the
// terminal, so without a file the logs are discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return xslog.NewLoggerFromEnv(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return xslog.NewLoggerFromEnv(f), func() { _ = f.Close() }, nil
}
