package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/whatif/internal/repository"
	"github.com/alexanderramin/whatif/internal/service"
	"github.com/alexanderramin/whatif/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	snapRepo := repository.NewSQLiteSnapshotRepo(db)
	scRepo := repository.NewSQLiteScenarioRepo(db)
	uow := testutil.NewTestUoW(db)

	return &App{
		Snapshots: service.NewSnapshotService(snapRepo, uow),
		Scenarios: service.NewScenarioService(scRepo, snapRepo),
		Evaluate:  service.NewEvaluateService(snapRepo, scRepo),
	}
}

// executeCmd runs a cobra command and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedDemo loads the demo dataset and creates one scenario against it.
func seedDemo(t *testing.T, app *App) (snapshotID, scenarioID string) {
	t.Helper()
	ctx := context.Background()
	result, err := app.Snapshots.LoadDemo(ctx)
	require.NoError(t, err)
	sc, err := app.Scenarios.Create(ctx, result.Snapshot.ID, "test-plan")
	require.NoError(t, err)
	return result.Snapshot.ID, sc.ID
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "whatif")
}

func TestSnapshotDemoCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "snapshot", "demo")
	require.NoError(t, err)

	snaps, err := app.Snapshots.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, 1)
}

func TestSnapshotShowCmd_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "snapshot", "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSnapshotRemoveCmd(t *testing.T) {
	app := testApp(t)
	snapshotID, _ := seedDemo(t, app)

	_, err := executeCmd(t, app, "snapshot", "rm", snapshotID)
	require.NoError(t, err)

	snaps, err := app.Snapshots.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestScenarioNewCmd_RequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "scenario", "new")
	require.Error(t, err)
}

func TestScenarioNewCmd_ByPrefix(t *testing.T) {
	app := testApp(t)
	snapshotID, _ := seedDemo(t, app)

	_, err := executeCmd(t, app, "scenario", "new",
		"--snapshot", snapshotID[:8], "--name", "plan-b")
	require.NoError(t, err)

	scenarios, err := app.Scenarios.ListBySnapshot(context.Background(), snapshotID)
	require.NoError(t, err)
	assert.Len(t, scenarios, 2)
}

func TestPriorityMoveCmd(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "priority", "move", scenarioID, "project_0", "1")
	require.NoError(t, err)

	sc, err := app.Scenarios.GetByID(context.Background(), scenarioID)
	require.NoError(t, err)
	assert.Equal(t, "project_0", sc.PriorityOrder[0])
}

func TestPriorityMoveCmd_InvalidRank(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "priority", "move", scenarioID, "project_0", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rank")
}

func TestVirtualAddAndRemoveCmd(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "virtual", "add", scenarioID,
		"--team", "Engineering", "--role", "Developer", "--location", "Berlin",
		"--hours", "80")
	require.NoError(t, err)

	sc, err := app.Scenarios.GetByID(ctx, scenarioID)
	require.NoError(t, err)
	require.Len(t, sc.VirtualResources, 1)
	assert.Equal(t, 80.0, sc.VirtualResources[0].HoursPerMonth)

	_, err = executeCmd(t, app, "virtual", "rm", scenarioID, "0")
	require.NoError(t, err)

	sc, err = app.Scenarios.GetByID(ctx, scenarioID)
	require.NoError(t, err)
	assert.Empty(t, sc.VirtualResources)
}

func TestShiftSetAndClearCmd(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)
	ctx := context.Background()

	_, err := executeCmd(t, app, "shift", "set", scenarioID, "project_1", "2")
	require.NoError(t, err)

	sc, err := app.Scenarios.GetByID(ctx, scenarioID)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.TimelineShifts["project_1"])

	_, err = executeCmd(t, app, "shift", "clear", scenarioID, "project_1")
	require.NoError(t, err)

	sc, err = app.Scenarios.GetByID(ctx, scenarioID)
	require.NoError(t, err)
	assert.Empty(t, sc.TimelineShifts)
}

func TestShiftListCmd(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "shift", "set", scenarioID, "project_1", "-1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "shift", "list", scenarioID)
	require.NoError(t, err)
}

func TestShiftSetCmd_OutOfRange(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "shift", "set", scenarioID, "project_1", "9")
	require.Error(t, err)
}

func TestEvaluateCmd(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "evaluate", scenarioID)
	require.NoError(t, err)
}

func TestEvaluateCmd_Baseline(t *testing.T) {
	app := testApp(t)
	snapshotID, _ := seedDemo(t, app)

	_, err := executeCmd(t, app, "evaluate", "--baseline", snapshotID)
	require.NoError(t, err)
}

func TestEvaluateCmd_JSON(t *testing.T) {
	app := testApp(t)
	_, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "evaluate", scenarioID, "--json")
	require.NoError(t, err)
}

func TestEvaluateCmd_BothArgAndBaseline(t *testing.T) {
	app := testApp(t)
	snapshotID, scenarioID := seedDemo(t, app)

	_, err := executeCmd(t, app, "evaluate", scenarioID, "--baseline", snapshotID)
	require.Error(t, err)
}

func TestEvaluateCmd_NoArgs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "evaluate")
	require.Error(t, err)
}

func TestScenarioResolution_ByName(t *testing.T) {
	app := testApp(t)
	seedDemo(t, app)

	_, err := executeCmd(t, app, "scenario", "show", "test-plan")
	require.NoError(t, err)
}
