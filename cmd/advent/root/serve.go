package root

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/api"
	"advent/internal/engine"
	"advent/internal/ledger"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar over HTTP",
		Long:  "Start a local HTTP server exposing doors, redeem, stats, achievements, profile and backup endpoints. The web client authenticates through POST /api/auth.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stop := a.ledger.StartAutosave(ctx, ledger.DefaultAutosaveInterval)
			defer stop()

			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
			srv := api.NewServer(port, logger)

			milestones := engine.NewMilestones(a.svc.Catalog().Len())
			handler := api.NewHandler(a.svc, a.gate, a.codec, a.profile, milestones, logger)
			handler.Routes(srv.Router)

			return srv.Serve()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8177, "HTTP listen port")

	return cmd
}
