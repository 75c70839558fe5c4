package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"advent/internal/engine"
	"advent/internal/ui"
)

func newRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <id>",
		Short: "Redeem an unlocked coupon",
		Long: `Redeem the coupon behind an unlocked door.

Redemption is one-way: once redeemed, a coupon stays redeemed until a full
calendar reset. Redeeming an already-redeemed coupon is a harmless no-op.`,
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
			milestones := engine.NewMilestones(a.svc.Catalog().Len())
			res, err := a.svc.Redeem(ctx, id, milestones)
			if err != nil {
				return err
			}

			if res.AlreadyRedeemed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Warn.Render(ui.IconInfo+" Already redeemed"),
					res.Coupon.Emoji, res.Coupon.Title,
					ui.Muted.Render("("+res.RedeemedAt.Format("2006-01-02 15:04")+")"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Redeemed"), res.Coupon.Emoji, res.Coupon.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(res.Coupon.Description))
			if res.Coupon.RedeemInstructions != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("How to redeem", res.Coupon.RedeemInstructions))
			}
			for _, ms := range res.Milestones {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeMilestone, ui.Gold.Render(ms.Message))
			}
			return nil
		},
	}

	return cmd
}
