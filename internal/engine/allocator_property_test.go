package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	propTeams     = []string{"Digital", "Strategy", "Analytics"}
	propRoles     = []string{"Developer", "UX Designer", "Consultant"}
	propLocations = []string{"London", "Pune"}
	propMonths    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
)

// randomFixture builds a snapshot and scenario with whole-hour values so that
// every allocation sum is exact in float64.
func randomFixture(rng *rand.Rand) (*domain.Snapshot, *domain.Scenario) {
	months := propMonths[:rng.Intn(len(propMonths))+1]

	numBuckets := rng.Intn(5) + 1
	buckets := make([]domain.CapacityBucket, 0, numBuckets)
	for i := 0; i < numBuckets; i++ {
		capacity := make(map[string]float64, len(months))
		for _, m := range months {
			capacity[m] = float64(rng.Intn(400))
		}
		buckets = append(buckets, domain.CapacityBucket{
			ID:              fmt.Sprintf("bucket_%d", i),
			Team:            propTeams[rng.Intn(len(propTeams))],
			Role:            propRoles[rng.Intn(len(propRoles))],
			Location:        propLocations[rng.Intn(len(propLocations))],
			MonthlyCapacity: capacity,
		})
	}

	numProjects := rng.Intn(8) + 1
	projects := make([]domain.Project, 0, numProjects)
	order := make([]string, 0, numProjects)
	shifts := make(map[string]int)
	for i := 0; i < numProjects; i++ {
		demand := make(map[string]float64, len(months))
		for _, m := range months {
			if rng.Intn(3) > 0 {
				demand[m] = float64(rng.Intn(200))
			}
		}
		id := fmt.Sprintf("project_%d", i)
		projects = append(projects, domain.Project{
			ID: id, Name: id,
			Team:     propTeams[rng.Intn(len(propTeams))],
			Role:     propRoles[rng.Intn(len(propRoles))],
			Location: propLocations[rng.Intn(len(propLocations))],
			// Some projects reference triples with no capacity record.
			MonthlyDemand: demand,
		})
		order = append(order, id)
		if rng.Intn(3) == 0 {
			shifts[id] = rng.Intn(2*len(months)+1) - len(months)
		}
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var virtual []domain.VirtualResource
	for i := rng.Intn(3); i > 0; i-- {
		virtual = append(virtual, domain.VirtualResource{
			Team:          propTeams[rng.Intn(len(propTeams))],
			Role:          propRoles[rng.Intn(len(propRoles))],
			Location:      propLocations[rng.Intn(len(propLocations))],
			HoursPerMonth: float64(rng.Intn(150) + 1),
		})
	}

	snap := &domain.Snapshot{ID: "snap", Months: months, Buckets: buckets, Projects: projects}
	sc := &domain.Scenario{ID: "sc", SnapshotID: "snap", PriorityOrder: order, VirtualResources: virtual, TimelineShifts: shifts}
	return snap, sc
}

func TestEvaluate_Invariants_ConservationAndCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		snap, sc := randomFixture(rng)
		res := Evaluate(snap, sc)

		// Conservation: allocated + deficit == demand in every cell, and the
		// reported totals are the sums of the cells.
		var totalDeficit float64
		consumedByBucket := make(map[domain.BucketKey]map[string]float64)
		for _, out := range res.Projects {
			var projectDeficit float64
			for m, cell := range out.Months {
				assert.Equal(t, cell.Demand, cell.Allocated+cell.Deficit,
					"trial %d project %s month %s: conservation", trial, out.ProjectID, m)
				assert.GreaterOrEqual(t, cell.Allocated, 0.0, "trial %d: no negative allocation", trial)
				assert.GreaterOrEqual(t, cell.Deficit, 0.0, "trial %d: no negative deficit", trial)
				projectDeficit += cell.Deficit
				if cell.Allocated > 0 {
					if consumedByBucket[out.Key] == nil {
						consumedByBucket[out.Key] = make(map[string]float64)
					}
					consumedByBucket[out.Key][m] += cell.Allocated
				}
			}
			assert.Equal(t, projectDeficit, out.TotalDeficit,
				"trial %d project %s: total deficit is the sum of monthly deficits", trial, out.ProjectID)
			totalDeficit += projectDeficit
		}
		assert.Equal(t, totalDeficit, res.TotalDeficit,
			"trial %d: portfolio deficit is the sum over all project-months", trial)

		// Capacity accounting: consumed + remaining == capacity, nothing
		// oversubscribed, and bucket consumption matches project allocations.
		for key, u := range res.Buckets {
			for _, m := range res.Months {
				assert.Equal(t, u.Capacity[m], u.Consumed[m]+u.Remaining[m],
					"trial %d bucket %s month %s", trial, key, m)
				assert.GreaterOrEqual(t, u.Remaining[m], 0.0, "trial %d bucket %s: remaining never negative", trial, key)
				assert.Equal(t, consumedByBucket[key][m], u.Consumed[m],
					"trial %d bucket %s month %s: consumed equals allocations drawn", trial, key, m)
			}
		}
	}
}

func TestEvaluate_Invariant_PureAndIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		snap, sc := randomFixture(rng)

		before := make([]map[string]float64, len(snap.Projects))
		for i := range snap.Projects {
			before[i] = make(map[string]float64, len(snap.Projects[i].MonthlyDemand))
			for m, h := range snap.Projects[i].MonthlyDemand {
				before[i][m] = h
			}
		}

		first := Evaluate(snap, sc)
		second := Evaluate(snap, sc)

		assert.Equal(t, first, second, "trial %d: identical inputs, identical output", trial)
		for i := range snap.Projects {
			assert.Equal(t, before[i], snap.Projects[i].MonthlyDemand,
				"trial %d: evaluation must not mutate baseline demand", trial)
		}
	}
}

func TestEvaluate_Invariant_PriorityMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		snap, sc := randomFixture(rng)
		if len(sc.PriorityOrder) < 2 {
			continue
		}

		base := Evaluate(snap, sc)

		// Promote a random non-head project to the front.
		idx := rng.Intn(len(sc.PriorityOrder)-1) + 1
		promoted := sc.PriorityOrder[idx]
		moved := &domain.Scenario{
			SnapshotID:       sc.SnapshotID,
			PriorityOrder:    append([]string(nil), sc.PriorityOrder...),
			VirtualResources: sc.VirtualResources,
			TimelineShifts:   sc.TimelineShifts,
		}
		require.NoError(t, moved.MoveProject(promoted, 1))

		after := Evaluate(snap, moved)

		baseOut := base.Project(promoted)
		afterOut := after.Project(promoted)
		require.NotNil(t, baseOut)
		require.NotNil(t, afterOut)
		assert.LessOrEqual(t, afterOut.TotalDeficit, baseOut.TotalDeficit,
			"trial %d: moving %s to the front must never increase its deficit", trial, promoted)
	}
}

func TestEvaluate_Invariant_VirtualCapacityMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(123))

	for trial := 0; trial < 100; trial++ {
		snap, sc := randomFixture(rng)
		base := Evaluate(snap, sc)

		// Reinforce the bucket of a random project.
		target := snap.Projects[rng.Intn(len(snap.Projects))]
		boosted := &domain.Scenario{
			SnapshotID:    sc.SnapshotID,
			PriorityOrder: sc.PriorityOrder,
			VirtualResources: append(append([]domain.VirtualResource(nil), sc.VirtualResources...),
				domain.VirtualResource{
					Team: target.Team, Role: target.Role, Location: target.Location,
					HoursPerMonth: float64(rng.Intn(200) + 1),
				}),
			TimelineShifts: sc.TimelineShifts,
		}

		after := Evaluate(snap, boosted)

		targetKey := target.Key()
		for _, baseOut := range base.Projects {
			afterOut := after.Project(baseOut.ProjectID)
			require.NotNil(t, afterOut)
			if baseOut.Key == targetKey {
				assert.LessOrEqual(t, afterOut.TotalDeficit, baseOut.TotalDeficit,
					"trial %d: added capacity in %s must never raise a deficit there", trial, targetKey)
			} else {
				assert.Equal(t, baseOut.TotalDeficit, afterOut.TotalDeficit,
					"trial %d: buckets other than %s must be unaffected", trial, targetKey)
			}
		}
	}
}
