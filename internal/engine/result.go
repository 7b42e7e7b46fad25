package engine

import "github.com/alexanderramin/whatif/internal/domain"

// BucketUsage is the per-bucket utilization time series in a result:
// effective capacity, consumed, remaining, and rounded percentage per month.
type BucketUsage struct {
	Key            domain.BucketKey
	Team           string
	Role           string
	Location       string
	IsVirtual      bool
	Capacity       map[string]float64
	Consumed       map[string]float64
	Remaining      map[string]float64
	UtilizationPct map[string]int
}

// MonthCell is the allocation outcome for one project-month.
// Allocated + Deficit == Demand in every cell.
type MonthCell struct {
	Status    domain.MonthStatus
	Demand    float64
	Allocated float64
	Deficit   float64
}

// ProjectOutcome is one project's row in a result: its rank in the priority
// order, its per-month cells, and its rolled-up status and deficit.
type ProjectOutcome struct {
	ProjectID    string
	Name         string
	Rank         int
	Key          domain.BucketKey
	Months       map[string]MonthCell
	TotalDemand  float64
	TotalDeficit float64
	Overall      domain.MonthStatus
}

// ScenarioResult is the engine's sole output, produced fresh on every run and
// never mutated in place. Projects appear in priority order (rank ascending).
type ScenarioResult struct {
	Months         []string
	Buckets        map[domain.BucketKey]*BucketUsage
	Projects       []ProjectOutcome
	TotalDeficit   float64
	StaffedCount   int
	PartialCount   int
	UnstaffedCount int
}

// Project returns the outcome for a project id, nil when the project did not
// participate in the run.
func (r *ScenarioResult) Project(id string) *ProjectOutcome {
	for i := range r.Projects {
		if r.Projects[i].ProjectID == id {
			return &r.Projects[i]
		}
	}
	return nil
}
