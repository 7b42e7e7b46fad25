package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/alexanderramin/whatif/internal/domain"
)

func newVirtualCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "virtual",
		Short: "Manage hypothetical hires",
	}

	cmd.AddCommand(
		newVirtualAddCmd(app),
		newVirtualListCmd(app),
		newVirtualRemoveCmd(app),
	)

	return cmd
}

func newVirtualAddCmd(app *App) *cobra.Command {
	var team, role, location string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add SCENARIO",
		Short: "Add a virtual resource to a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, err := resolveScenario(ctx, app, args[0])
			if err != nil {
				return err
			}
			updated, err := app.Scenarios.AddVirtualResource(ctx, sc.ID, domain.VirtualResource{
				Team:          team,
				Role:          role,
				Location:      location,
				HoursPerMonth: hours,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added virtual resource (%d total)\n", len(updated.VirtualResources))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours per month")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newVirtualListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list SCENARIO",
		Short: "List a scenario's virtual resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := resolveScenario(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if len(sc.VirtualResources) == 0 {
				fmt.Println("No virtual resources.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatVirtualResources(sc.VirtualResources))
			return nil
		},
	}
}

func newVirtualRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm SCENARIO INDEX",
		Short: "Remove a virtual resource by its list index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, err := resolveScenario(ctx, app, args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			updated, err := app.Scenarios.RemoveVirtualResource(ctx, sc.ID, index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed virtual resource (%d remaining)\n", len(updated.VirtualResources))
			return nil
		},
	}
}
