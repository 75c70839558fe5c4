package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/ui"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <day> <month> <year>",
		Short: "Unlock the calendar with the secret date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errors.New("day, month and year are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if a.gate.IsAuthenticated(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconKey+" Already unlocked."))
				return nil
			}
			if !a.gate.Authenticate(ctx, args[0], args[1], args[2]) {
				return errors.New("that's not the date, try again")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconKey+" Calendar unlocked!"))
			if name, ok := a.profile.Name(ctx); ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTree, "Welcome back, "+name))
			}
			return nil
		},
	}

	return cmd
}
