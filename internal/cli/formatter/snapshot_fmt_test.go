package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/testutil"
)

func TestFormatSnapshotList(t *testing.T) {
	snaps := []*domain.Snapshot{
		testutil.NewTestSnapshot("q3-plan"),
		testutil.NewTestSnapshot("q4-draft", testutil.WithMonths(nil)),
	}

	out := FormatSnapshotList(snaps)

	assert.Contains(t, out, "q3-plan")
	assert.Contains(t, out, "q3-plan.json")
	assert.Contains(t, out, "Jan-Mar")
	// Empty month window renders a placeholder instead of panicking.
	assert.Contains(t, out, "q4-draft")
}

func TestFormatSnapshotShow_Tables(t *testing.T) {
	snap := testutil.NewTestSnapshot("q3-plan",
		testutil.WithBuckets(
			testutil.NewTestBucket("platform", "engineer", "berlin",
				testutil.WithCapacity(map[string]float64{"Jan": 120.5, "Feb": 80})),
		),
		testutil.WithProjects(
			testutil.NewTestProject("Atlas", "platform", "engineer", "berlin",
				testutil.WithDemand(map[string]float64{"Jan": 60})),
		),
	)

	out := FormatSnapshotShow(snap)

	assert.Contains(t, out, "CAPACITY")
	assert.Contains(t, out, "DEMAND")
	assert.Contains(t, out, "platform")
	assert.Contains(t, out, "120.5")
	assert.Contains(t, out, "Atlas")
	assert.Contains(t, out, "60")
}

func TestHours(t *testing.T) {
	assert.Equal(t, "120", Hours(120))
	assert.Equal(t, "120.5", Hours(120.5))
	assert.Equal(t, "0", Hours(0))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGHEADER"}, [][]string{{"x", "y"}})

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "LONGHEADER")
	assert.Contains(t, out, "─")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
