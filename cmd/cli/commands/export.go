package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <period>",
		Short: "Export the committed roster of a period as an Excel sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			workbook, err := services.ExportRoster(app.Ctx, app.Store, app.Logger, period)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("roster_%s.xlsx", period)
			}
			if err := workbook.SaveAs(output); err != nil {
				return fmt.Errorf("failed to save workbook: %w", err)
			}

			fmt.Printf("\n✓ Roster written to %s\n\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default roster_<period>.xlsx)")
	return cmd
}
