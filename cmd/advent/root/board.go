package root

import (
	"context"

	"github.com/spf13/cobra"

	"advent/internal/engine"
	"advent/internal/ledger"
	"advent/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI calendar board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := a.requireAuth(ctx); err != nil {
				return err
			}

			stop := a.ledger.StartAutosave(ctx, ledger.DefaultAutosaveInterval)
			defer stop()

			milestones := engine.NewMilestones(a.svc.Catalog().Len())
			return tui.RunBoard(ctx, a.svc, milestones, cmd.OutOrStdout())
		},
	}

	return cmd
}
