package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// RunCmd creates the run (commit) command
func RunCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <period>",
		Short: "Run the solver for a period and persist the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			result, err := services.Run(app.Ctx, app.Store, app.Catalog, app.Cfg, app.Logger, period)
			if errors.Is(err, db.ErrStaleLockVersion) {
				return fmt.Errorf("locks changed while the solver was running - run again")
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Run committed\n")
			printRunResult(result)
			return nil
		},
	}
}
