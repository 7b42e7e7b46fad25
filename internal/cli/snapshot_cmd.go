package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage baseline snapshots",
	}

	cmd.AddCommand(
		newSnapshotLoadCmd(app),
		newSnapshotDemoCmd(app),
		newSnapshotListCmd(app),
		newSnapshotShowCmd(app),
		newSnapshotRemoveCmd(app),
	)

	return cmd
}

func newSnapshotLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Import a baseline snapshot from a parsed JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Snapshots.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported snapshot %s (%d buckets, %d projects) [%s]\n",
				result.Snapshot.Name, result.BucketCount, result.ProjectCount,
				formatter.TruncID(result.Snapshot.ID))
			return nil
		},
	}
}

func newSnapshotDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load the built-in demo dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Snapshots.LoadDemo(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Loaded demo snapshot (%d buckets, %d projects) [%s]\n",
				result.BucketCount, result.ProjectCount,
				formatter.TruncID(result.Snapshot.ID))
			return nil
		},
	}
}

func newSnapshotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := app.Snapshots.List(context.Background())
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				fmt.Println("No snapshots imported yet. Try 'whatif snapshot demo'.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSnapshotList(snapshots))
			return nil
		},
	}
}

func newSnapshotShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show snapshot capacity and demand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSnapshotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			snap, err := app.Snapshots.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSnapshotShow(snap))
			return nil
		},
	}
}

func newSnapshotRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a snapshot and its scenarios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSnapshotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Snapshots.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed snapshot %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
