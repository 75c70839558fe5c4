package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/ui"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [value]",
		Short: "Show or set the display name used in greetings",
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

			if len(args) == 0 {
				name, ok := a.profile.Name(ctx)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no name set: run 'advent name <value>')"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", name))
				return nil
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("name must not be empty")
			}
			if !a.profile.SetName(ctx, name) {
				return errors.New("could not save name")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Hello, "+name+"!"))
			return nil
		},
	}

	return cmd
}
