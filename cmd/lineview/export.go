package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tecpap/lineview/internal/client/scheduler"
	"github.com/tecpap/lineview/internal/config"
	"github.com/tecpap/lineview/internal/xslog"
)

func exportCmd() *cobra.Command {
	var (
		limit int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the plan as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client := scheduler.New(cfg.BackendURL,
				scheduler.WithLogger(xslog.NewLoggerFromEnv(os.Stderr)),
				scheduler.WithTimeout(cfg.HTTPTimeout))

			csv, err := client.Plan.ExportCSV(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(csv))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 200, "maximum plan rows to export")
	cmd.Flags().StringVar(&out, "out", "plan.csv", "output file path")

	return cmd
}
