package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"advent/internal/profile"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <id>",
		Short: "Print the scannable redemption record for a redeemed coupon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.Atoi(args[0])
			door, err := a.svc.Door(id)
			if err != nil {
				return err
			}
			at, ok := a.ledger.RedeemedAt(id)
			if !ok {
				return fmt.Errorf("coupon %d is not redeemed", id)
			}

			payload, err := profile.NewRedemptionRecord(door.Coupon, at).Encode()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	return cmd
}
