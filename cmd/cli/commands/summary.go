package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
)

// SummaryCmd creates the summary command
func SummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <period>",
		Short: "Show input counts for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			summary, err := services.InputSummary(app.Ctx, app.Store, app.Catalog, app.Logger, period)
			if err != nil {
				return err
			}

			fmt.Printf("\nInput summary for %s:\n", summary.Period)
			fmt.Printf("  Employees:  %d\n", summary.Employees)
			fmt.Printf("  Slots:      %d\n", summary.Slots)
			fmt.Printf("  Roles:      %d\n", summary.Roles)
			fmt.Printf("  Hard rules: %d\n", summary.HardRules)
			fmt.Printf("  Soft rules: %d\n\n", summary.SoftRules)

			return nil
		},
	}
}
