package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all redemption state (irreversible)",
		Long: `Reset the calendar: every coupon becomes unredeemed.

This cannot be undone. Export a backup first if in doubt. Without --yes the
command asks for confirmation.`,
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

			confirmed := yes
			if !confirmed {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Really clear all redemptions? [y/N] "))
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				confirmed = strings.EqualFold(strings.TrimSpace(line), "y")
			}

			if err := a.codec.Reset(ctx, confirmed); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Calendar reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
