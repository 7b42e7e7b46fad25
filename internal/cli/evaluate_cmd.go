package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/cli/formatter"
	"github.com/alexanderramin/whatif/internal/engine"
)

func newEvaluateCmd(app *App) *cobra.Command {
	var baseline string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evaluate [SCENARIO]",
		Short: "Evaluate a scenario's staffing picture",
		Long: `Recompute the staffing picture for a scenario: aggregate capacity with
virtual resources, apply timeline shifts, allocate greedily in priority
order, and summarize per-project statuses and bucket utilization.

With --baseline, evaluates a snapshot with no levers applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var result *engine.ScenarioResult
			if baseline != "" {
				if len(args) > 0 {
					return fmt.Errorf("pass either a scenario or --baseline, not both")
				}
				snapshotID, err := resolveSnapshotID(ctx, app, baseline)
				if err != nil {
					return err
				}
				if result, err = app.Evaluate.Baseline(ctx, snapshotID); err != nil {
					return err
				}
			} else {
				if len(args) == 0 {
					return fmt.Errorf("scenario ID is required (or use --baseline SNAPSHOT)")
				}
				sc, err := resolveScenario(ctx, app, args[0])
				if err != nil {
					return err
				}
				if result, err = app.Evaluate.Evaluate(ctx, sc.ID); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Printf("%s\n", formatter.FormatResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseline, "baseline", "", "Evaluate a snapshot without any levers")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw result as JSON")

	return cmd
}
