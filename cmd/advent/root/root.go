package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "advent",
	Short:         "A 24-door gift coupon calendar",
	Long:          "Advent is a local-first advent calendar of gift coupons: one door per December day, each redeemable exactly once.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAuthCmd(),
		newDoorsCmd(),
		newRedeemCmd(),
		newRecordCmd(),
		newStatusCmd(),
		newNameCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
