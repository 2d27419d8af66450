package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
)

// StateCmd creates the state command
func StateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "state <period>",
		Short: "Show the planning state of a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			state, err := services.GetState(app.Ctx, app.Store, app.Logger, period)
			if err != nil {
				return err
			}

			fmt.Printf("\nPeriod:    %s\n", state.Period)
			if state.LastRunAt != nil {
				fmt.Printf("Last run:  %s\n", state.LastRunAt.Format("2006-01-02 15:04:05"))
			} else {
				fmt.Printf("Last run:  never\n")
			}
			fmt.Printf("Dirty:     %t\n", state.IsDirty)
			fmt.Printf("Submitted: %d\n", state.SubmittedCount)
			fmt.Printf("Missing:   %d\n\n", state.MissingCount)

			return nil
		},
	}
}
