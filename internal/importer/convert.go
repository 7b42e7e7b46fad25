package importer

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
)

const unknownField = "Unknown"

// canonicalMonthOrder positions the standard three-letter abbreviations;
// labels outside it sort after, keeping their incoming order.
var canonicalMonthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Convert turns a validated schema into an immutable domain snapshot.
// Blank team/role/location fields default to "Unknown" and total demand is
// recomputed when absent, matching the upstream parser. Projects come out
// sorted by descending total demand, the initial priority a new scenario
// starts from.
func Convert(schema *SnapshotSchema) *domain.Snapshot {
	snap := &domain.Snapshot{
		Months: effectiveMonths(schema),
	}

	if schema.Metadata != nil {
		snap.FileName = schema.Metadata.FileName
		if t, err := time.Parse(time.RFC3339, schema.Metadata.ParsedAt); err == nil {
			snap.ParsedAt = t
		}
	}

	snap.Buckets = make([]domain.CapacityBucket, 0, len(schema.Capacity.Buckets))
	for _, b := range schema.Capacity.Buckets {
		snap.Buckets = append(snap.Buckets, domain.CapacityBucket{
			ID:              b.ID,
			Team:            fieldOrUnknown(b.Team),
			Role:            fieldOrUnknown(b.Role),
			Location:        fieldOrUnknown(b.Location),
			MonthlyCapacity: copyHours(b.MonthlyCapacity),
		})
	}

	snap.Projects = make([]domain.Project, 0, len(schema.Demand.Projects))
	for _, p := range schema.Demand.Projects {
		project := domain.Project{
			ID:            p.ID,
			Name:          strings.TrimSpace(p.Name),
			Team:          fieldOrUnknown(p.Team),
			Role:          fieldOrUnknown(p.Role),
			Location:      fieldOrUnknown(p.Location),
			MonthlyDemand: copyHours(p.MonthlyDemand),
		}
		project.TotalDemand = domain.Float64FromPtrWithDefault(project.ComputeTotalDemand(), p.TotalDemand)
		snap.Projects = append(snap.Projects, project)
	}
	sort.SliceStable(snap.Projects, func(i, j int) bool {
		return snap.Projects[i].TotalDemand > snap.Projects[j].TotalDemand
	})

	return snap
}

// effectiveMonths returns the schema's month window: the top-level list when
// present, otherwise the union of the capacity and demand month lists in
// canonical month order.
func effectiveMonths(schema *SnapshotSchema) []string {
	if len(schema.Months) > 0 {
		return append([]string(nil), schema.Months...)
	}

	var merged []string
	seen := make(map[string]bool)
	for _, m := range append(append([]string(nil), schema.Capacity.Months...), schema.Demand.Months...) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		merged = append(merged, m)
	}

	rank := make(map[string]int, len(canonicalMonthOrder))
	for i, m := range canonicalMonthOrder {
		rank[m] = i
	}
	sort.SliceStable(merged, func(i, j int) bool {
		ri, iKnown := rank[merged[i]]
		rj, jKnown := rank[merged[j]]
		if iKnown != jKnown {
			return iKnown
		}
		if !iKnown {
			return false
		}
		return ri < rj
	})

	return merged
}

func fieldOrUnknown(s string) string {
	return domain.CoalesceStr(strings.TrimSpace(s), unknownField)
}

func copyHours(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for m, h := range src {
		dst[m] = h
	}
	return dst
}
