package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
)

// LockCmd creates the lock command group
func LockCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Manage admin locks on duty slots",
	}

	cmd.AddCommand(lockListCmd(app))
	cmd.AddCommand(lockSetCmd(app))
	cmd.AddCommand(lockClearCmd(app))
	cmd.AddCommand(lockDeleteCmd(app))

	return cmd
}

func lockListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <period>",
		Short: "List all locks of a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			locks, err := services.GetLocks(app.Ctx, app.Store, app.Logger, period)
			if err != nil {
				return err
			}

			if len(locks) == 0 {
				fmt.Printf("\nNo locks for %s\n\n", period)
				return nil
			}

			fmt.Printf("\nLocks for %s (%d):\n", period, len(locks))
			for _, lock := range locks {
				target := "(left free)"
				if lock.EmployeeID != nil {
					target = *lock.EmployeeID
				}
				fmt.Printf("  %s -> %s\n", lock.SlotID, target)
			}
			fmt.Println()
			return nil
		},
	}
}

func lockSetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <period> <slot_id> <employee_id>",
		Short: "Pin a slot to an employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			employeeID := args[2]
			if err := services.UpsertLock(app.Ctx, app.Store, app.Logger, period, args[1], &employeeID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Slot %s locked to %s\n\n", args[1], employeeID)
			return nil
		},
	}
}

func lockClearCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <period> <slot_id>",
		Short: "Pin a slot as explicitly left free",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			if err := services.UpsertLock(app.Ctx, app.Store, app.Logger, period, args[1], nil); err != nil {
				return err
			}

			fmt.Printf("\n✓ Slot %s locked empty\n\n", args[1])
			return nil
		},
	}
}

func lockDeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <period> <slot_id>",
		Short: "Remove a lock so the solver decides the slot again",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := services.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			if err := services.DeleteLock(app.Ctx, app.Store, app.Logger, period, args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Lock on slot %s removed\n\n", args[1])
			return nil
		},
	}
}
