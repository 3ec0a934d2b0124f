package main

import (
	"fmt"
	"os"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/config"
	"github.com/tecpap/lineview/internal/xslog"
)

// snapshot fetches the engine, runner and hourly views in parallel and
// prints them as one JSON document. Handy for scripting and debugging
// without the TUI.
func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the backend state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client := scheduler.New(cfg.BackendURL,
				scheduler.WithLogger(xslog.NewLoggerFromEnv(os.Stderr)),
				scheduler.WithTimeout(cfg.HTTPTimeout))

			var (
				engine   *scheduler.EngineState
				realtime *scheduler.RealtimeState
				hourly   []scheduler.HourlyReport
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				engine, err = client.Engine.State(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				realtime, err = client.Realtime.State(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				hourly, err = client.Realtime.Hourly(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := struct {
				Engine   *scheduler.EngineState   `json:"engine"`
				Realtime *scheduler.RealtimeState `json:"realtime"`
				Hourly   []scheduler.HourlyReport `json:"hourly"`
			}{engine, realtime, hourly}

			enc := go_json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
