package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/alexanderramin/whatif/internal/domain"
)

func newPriorityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Reorder scenario priorities",
	}

	cmd.AddCommand(
		newPriorityShowCmd(app),
		newPriorityMoveCmd(app),
		newPrioritySetCmd(app),
	)

	return cmd
}

// loadScenarioAndSnapshot resolves a scenario reference and loads its
// snapshot, shared by all lever commands.
func loadScenarioAndSnapshot(ctx context.Context, app *App, ref string) (*domain.Scenario, *domain.Snapshot, error) {
	sc, err := resolveScenario(ctx, app, ref)
	if err != nil {
		return nil, nil, err
	}
	snap, err := app.Snapshots.GetByID(ctx, sc.SnapshotID)
	if err != nil {
		return nil, nil, err
	}
	return sc, snap, nil
}

func newPriorityShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SCENARIO",
		Short: "Show the scenario's priority order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, snap, err := loadScenarioAndSnapshot(ctx, app, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatScenarioShow(sc, snap))
			return nil
		},
	}
}

func newPriorityMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move SCENARIO PROJECT RANK",
		Short: "Move a project to a 1-based rank",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, snap, err := loadScenarioAndSnapshot(ctx, app, args[0])
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(snap, args[1])
			if err != nil {
				return err
			}
			rank, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid rank %q: %w", args[2], err)
			}
			updated, err := app.Scenarios.MoveProject(ctx, sc.ID, projectID, rank)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatScenarioShow(updated, snap))
			return nil
		},
	}
}

func newPrioritySetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set SCENARIO PROJECT...",
		Short: "Replace the priority order with the given project sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sc, snap, err := loadScenarioAndSnapshot(ctx, app, args[0])
			if err != nil {
				return err
			}
			order := make([]string, 0, len(args)-1)
			for _, ref := range args[1:] {
				projectID, err := resolveProjectID(snap, ref)
				if err != nil {
					return err
				}
				order = append(order, projectID)
			}
			updated, err := app.Scenarios.SetPriorityOrder(ctx, sc.ID, order)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatScenarioShow(updated, snap))
			return nil
		},
	}
}
