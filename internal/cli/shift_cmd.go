package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift project timelines",
	}

	cmd.AddCommand(
		newShiftSetCmd(app),
		newShiftListCmd(app),
		newShiftClearCmd(app),
	)

	return cmd
}

func newShiftSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set SCENARIO PROJECT MONTHS",
		Short: "Shift a project by a number of months (negative pulls earlier)",
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
			months, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid shift %q: %w", args[2], err)
			}
			if _, err := app.Scenarios.SetTimelineShift(ctx, sc.ID, projectID, months); err != nil {
				return err
			}
			name := projectID
			if p := snap.ProjectByID(projectID); p != nil {
				name = p.Name
			}
			if months == 0 {
				fmt.Printf("Cleared shift for %s\n", name)
			} else {
				fmt.Printf("Shifted %s by %s\n", name, formatter.ShiftBadge(months))
			}
			return nil
		},
	}
}

func newShiftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list SCENARIO",
		Short: "List a scenario's timeline shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, snap, err := loadScenarioAndSnapshot(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if len(sc.TimelineShifts) == 0 {
				fmt.Println("No timeline shifts.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTimelineShifts(sc, snap))
			return nil
		},
	}
}

func newShiftClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear SCENARIO PROJECT",
		Short: "Clear a project's timeline shift",
		Args:  cobra.ExactArgs(2),
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
			if _, err := app.Scenarios.SetTimelineShift(ctx, sc.ID, projectID, 0); err != nil {
				return err
			}
			fmt.Printf("Cleared shift for %s\n", projectID)
			return nil
		},
	}
}
