package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/whatif/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Snapshots service.SnapshotService
	Scenarios service.ScenarioService
	Evaluate  service.EvaluateService
}

// NewRootCmd creates the top-level "whatif" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "whatif",
		Short: "What-if resourcing scenario planner",
		Long: `Explore staffing what-ifs against an imported resourcing baseline:
reorder project priorities, add hypothetical hires, and shift project
timelines, then re-evaluate the staffing picture.`,
	}

	root.AddCommand(
		newSnapshotCmd(app),
		newScenarioCmd(app),
		newPriorityCmd(app),
		newVirtualCmd(app),
		newShiftCmd(app),
		newEvaluateCmd(app),
	)

	return root
}
