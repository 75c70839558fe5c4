package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/catalog"
	"advent/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show calendar stats and achievements",
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

			title := "Calendar Status"
			if name, ok := a.profile.Name(ctx); ok {
				title = name + "'s Calendar"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTree, title))

			stats := a.svc.Stats()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Redeemed", fmt.Sprintf("%d of %d (%d%%)", stats.Redeemed, stats.Total, stats.Percentage)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Remaining", stats.Remaining))
			unlocked := a.svc.Oracle().UnlockedCount(a.svc.Catalog())
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Doors open", unlocked))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Categories"))
			for _, cat := range catalog.Categories() {
				total := stats.CategoryCounts[cat]
				if total == 0 {
					continue
				}
				done := stats.RedeemedByCategory[cat]
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d/%d\n", cat, done, total)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements ("+a.svc.AchievementSummary()+")"))
			for _, ach := range a.svc.Achievements() {
				if ach.Earned {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ach.Icon, ui.Good.Render(ach.Name), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Muted.Render(ach.Icon+" "+ach.Name), ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
