package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/engine"
	"advent/internal/ui"
)

func newDoorsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "doors",
		Short: "List doors and their states",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTree, "Advent Calendar"))

			// One-time notice the first time today's door is seen open.
			if a.svc.Oracle().IsUnlockMonth() {
				today := a.svc.Oracle().CurrentDayOfMonth()
				if _, ok := a.svc.Catalog().ByDay(today); ok && !a.profile.DayNotified(ctx, today) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(fmt.Sprintf("%s Door %d opened today!", ui.IconSparkle, today)))
					a.profile.MarkDayNotified(ctx, today)
				}
			}

			for _, d := range a.svc.Doors() {
				if !all && d.Status == engine.StatusLocked && !d.IsToday {
					continue
				}
				line := fmt.Sprintf("%s %2d  %s", ui.StatusIcon(string(d.Status)), d.Coupon.Day, ui.StatusText(string(d.Status)))
				switch d.Status {
				case engine.StatusLocked:
					line += "  " + ui.Muted.Render(fmt.Sprintf("opens in %d day(s)", d.DaysUntil))
				default:
					line += fmt.Sprintf("  %s %s", d.Coupon.Emoji, d.Coupon.Title)
				}
				if d.IsToday {
					line += "  " + ui.Gold.Render("← today")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			stats := a.svc.Stats()
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Redeemed", fmt.Sprintf("%d/%d (%d%%)", stats.Redeemed, stats.Total, stats.Percentage)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked doors")

	return cmd
}
