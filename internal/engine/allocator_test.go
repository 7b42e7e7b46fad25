package engine

import (
	"testing"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func effectiveTable(buckets ...domain.CapacityBucket) map[domain.BucketKey]*domain.CapacityBucket {
	return AggregateCapacity(buckets, nil, testMonths)
}

func bucketWith(capacity map[string]float64) domain.CapacityBucket {
	return domain.CapacityBucket{
		ID: "bucket_0", Team: "Digital", Role: "Developer", Location: "Pune",
		MonthlyCapacity: capacity,
	}
}

// One bucket with 100h in Jan, two projects demanding 60h
// each. Priority 1 is fully staffed, priority 2 gets the remaining 40h.
func TestAllocate_SharedBucketContention(t *testing.T) {
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Jan": 60}),
		demandProject("p2", map[string]float64{"Jan": 60}),
	}

	outcomes, usage := Allocate(effective, projects, []string{"p1", "p2"}, testMonths)
	require.Len(t, outcomes, 2)

	first := outcomes[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, domain.StatusStaffed, first.Months["Jan"].Status)
	assert.Equal(t, 60.0, first.Months["Jan"].Allocated)
	assert.Equal(t, 0.0, first.TotalDeficit)

	second := outcomes[1]
	assert.Equal(t, 2, second.Rank)
	assert.Equal(t, domain.StatusPartial, second.Months["Jan"].Status)
	assert.Equal(t, 40.0, second.Months["Jan"].Allocated)
	assert.Equal(t, 20.0, second.Months["Jan"].Deficit)
	assert.Equal(t, 20.0, second.TotalDeficit)

	u := usage[domain.NewBucketKey("Digital", "Developer", "Pune")]
	require.NotNil(t, u)
	assert.Equal(t, 100.0, u.Consumed["Jan"])
	assert.Equal(t, 0.0, u.Remaining["Jan"])
}

func TestAllocate_PriorityOrderDecidesWhoStarves(t *testing.T) {
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Jan": 60}),
		demandProject("p2", map[string]float64{"Jan": 60}),
	}

	outcomes, _ := Allocate(effective, projects, []string{"p2", "p1"}, testMonths)

	assert.Equal(t, "p2", outcomes[0].ProjectID)
	assert.Equal(t, 0.0, outcomes[0].TotalDeficit)
	assert.Equal(t, "p1", outcomes[1].ProjectID)
	assert.Equal(t, 20.0, outcomes[1].TotalDeficit)
}

func TestAllocate_ZeroDemandMonthIsNone(t *testing.T) {
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100, "Feb": 100, "Mar": 100}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Feb": 50}),
	}

	outcomes, usage := Allocate(effective, projects, []string{"p1"}, testMonths)

	out := outcomes[0]
	assert.Equal(t, domain.StatusNone, out.Months["Jan"].Status)
	assert.Equal(t, domain.StatusStaffed, out.Months["Feb"].Status)
	assert.Equal(t, domain.StatusNone, out.Months["Mar"].Status)

	u := usage[domain.NewBucketKey("Digital", "Developer", "Pune")]
	assert.Equal(t, 100.0, u.Remaining["Jan"], "none months touch no capacity")
}

func TestAllocate_MissingBucketIsUnstaffed(t *testing.T) {
	// Demand for a triple with no capacity record allocates nothing; this is
	// degenerate input, not an error.
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100}))
	orphan := demandProject("p1", map[string]float64{"Jan": 30})
	orphan.Team = "Analytics"

	outcomes, _ := Allocate(effective, []domain.Project{orphan}, []string{"p1"}, testMonths)

	cell := outcomes[0].Months["Jan"]
	assert.Equal(t, domain.StatusUnstaffed, cell.Status)
	assert.Equal(t, 0.0, cell.Allocated)
	assert.Equal(t, 30.0, cell.Deficit)
}

func TestAllocate_UnknownIDInOrderSkipped(t *testing.T) {
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Jan": 60}),
	}

	outcomes, _ := Allocate(effective, projects, []string{"ghost", "p1"}, testMonths)

	require.Len(t, outcomes, 1, "stale ids contribute nothing")
	assert.Equal(t, "p1", outcomes[0].ProjectID)
	assert.Equal(t, 1, outcomes[0].Rank, "ranks stay dense after skipping")
}

func TestAllocate_NoCrossMonthBanking(t *testing.T) {
	// Surplus in Jan must not offset the Feb shortfall.
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 200, "Feb": 50}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Jan": 10, "Feb": 80}),
	}

	outcomes, usage := Allocate(effective, projects, []string{"p1"}, testMonths)

	feb := outcomes[0].Months["Feb"]
	assert.Equal(t, domain.StatusPartial, feb.Status)
	assert.Equal(t, 50.0, feb.Allocated)
	assert.Equal(t, 30.0, feb.Deficit, "Jan's 190h surplus is irrelevant to Feb")

	u := usage[domain.NewBucketKey("Digital", "Developer", "Pune")]
	assert.Equal(t, 190.0, u.Remaining["Jan"])
	assert.Equal(t, 0.0, u.Remaining["Feb"])
}

func TestAllocate_DoesNotMutateEffectiveTable(t *testing.T) {
	effective := effectiveTable(bucketWith(map[string]float64{"Jan": 100}))
	projects := []domain.Project{
		demandProject("p1", map[string]float64{"Jan": 60}),
	}

	Allocate(effective, projects, []string{"p1"}, testMonths)

	key := domain.NewBucketKey("Digital", "Developer", "Pune")
	assert.Equal(t, 100.0, effective[key].MonthlyCapacity["Jan"],
		"allocation works on a private copy of remaining capacity")
}
