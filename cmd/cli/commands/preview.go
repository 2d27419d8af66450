package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
)

// PreviewCmd creates the preview command
func PreviewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <period>",
		Short: "Run the solver for a period without persisting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			result, err := services.Preview(app.Ctx, app.Store, app.Catalog, app.Cfg, app.Logger, period)
			if err != nil {
				return err
			}

			printRunResult(result)
			return nil
		},
	}
}

func printRunResult(result *roster.RunResult) {
	fmt.Printf("\nPeriod:  %s\n", result.Period)
	fmt.Printf("Run ID:  %s\n", result.RunID)
	fmt.Printf("Score:   %.1f\n", result.Summary.Score)
	fmt.Printf("Coverage: %d/%d mandatory slots filled\n",
		result.Summary.Coverage.Filled, result.Summary.Coverage.Required)

	if result.PublishAllowed {
		fmt.Printf("Publish: ALLOWED\n\n")
	} else {
		fmt.Printf("Publish: BLOCKED\n\n")
	}

	if len(result.Assignments) > 0 {
		fmt.Printf("Assignments (%d):\n", len(result.Assignments))
		for _, a := range result.Assignments {
			fmt.Printf("  %s -> %s (%s)\n", a.SlotID, a.EmployeeID, a.Source)
		}
		fmt.Println()
	}

	if len(result.UnfilledSlots) > 0 {
		fmt.Printf("Unfilled slots (%d):\n", len(result.UnfilledSlots))
		for _, u := range result.UnfilledSlots {
			fmt.Printf("  %s on %s (%s): %v", u.SlotID, u.Date, u.ServiceType, u.ReasonCodes)
			if len(u.CandidatesBlockedBy) > 0 {
				fmt.Printf(" blocked by %v", u.CandidatesBlockedBy)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	if len(result.Violations) > 0 {
		fmt.Printf("Violations (%d):\n", len(result.Violations))
		for _, v := range result.Violations {
			fmt.Printf("  [%s] %s: %s\n", v.Severity, v.Code, v.Message)
		}
		fmt.Println()
	}
}
