package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/backup"
	"advent/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore redemption state from a backup document",
		Long: `Import a backup created by 'advent export'.

Importing replaces the current redeemed set entirely: it is a restore, not a
merge. Invalid documents are rejected without touching any state.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
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
			if err := a.requireAuth(ctx); err != nil {
				return err
			}

			info, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			if err := backup.CheckFile(args[0], info.Size()); err != nil {
				return err
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			res, err := a.codec.Import(ctx, raw)
			if err != nil {
				return err
			}

			if res.VersionMismatch {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("%s Backup version %q differs from %q, imported anyway.", ui.IconWarn, res.DocumentVersion, backup.Version)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Restored %d redeemed coupon(s).", ui.IconDone, res.Imported)))
			return nil
		},
	}

	return cmd
}
