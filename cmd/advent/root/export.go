package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export redemption state as a backup document",
		Long:  "Export the redeemed-coupon set as a versioned JSON backup. With no file argument the document is written to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := a.requireAuth(ctx); err != nil {
				return err
			}

			out, err := a.codec.ExportJSON()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			if err := os.WriteFile(args[0], append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Backup written to "+args[0]))
			return nil
		},
	}

	return cmd
}
