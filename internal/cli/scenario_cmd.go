package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage what-if scenarios",
	}

	cmd.AddCommand(
		newScenarioNewCmd(app),
		newScenarioListCmd(app),
		newScenarioShowCmd(app),
		newScenarioRenameCmd(app),
		newScenarioRemoveCmd(app),
	)

	return cmd
}

func newScenarioNewCmd(app *App) *cobra.Command {
	var snapshotRef, name string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a scenario against a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snapshotID, err := resolveSnapshotID(ctx, app, snapshotRef)
			if err != nil {
				return err
			}
			sc, err := app.Scenarios.Create(ctx, snapshotID, name)
			if err != nil {
				return err
			}
			fmt.Printf("Created scenario %s [%s]\n", sc.Name, formatter.TruncID(sc.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotRef, "snapshot", "", "Snapshot ID or name")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name")
	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newScenarioListCmd(app *App) *cobra.Command {
	var snapshotRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios for a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			snapshotID, err := resolveSnapshotID(ctx, app, snapshotRef)
			if err != nil {
				return err
			}
			scenarios, err := app.Scenarios.ListBySnapshot(ctx, snapshotID)
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Println("No scenarios yet. Try 'whatif scenario new'.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatScenarioList(scenarios))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotRef, "snapshot", "", "Snapshot ID or name")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func newScenarioShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a scenario's lever state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, err := resolveScenario(ctx, app, args[0])
			if err != nil {
				return err
			}
			snap, err := app.Snapshots.GetByID(ctx, sc.SnapshotID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatScenarioShow(sc, snap))
			return nil
		},
	}
}

func newScenarioRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a scenario",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, err := resolveScenario(ctx, app, args[0])
			if err != nil {
				return err
			}
			updated, err := app.Scenarios.Rename(ctx, sc.ID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed scenario to %s\n", updated.Name)
			return nil
		},
	}
}

func newScenarioRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, err := resolveScenario(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Delete(ctx, sc.ID); err != nil {
				return err
			}
			fmt.Printf("Removed scenario %s\n", sc.Name)
			return nil
		},
	}
}
