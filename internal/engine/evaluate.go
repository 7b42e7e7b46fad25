// Package engine recomputes a resourcing scenario from its immutable
// baseline. The whole pipeline is a pure function: it performs no I/O, keeps
// no state between runs, and never mutates its inputs, so callers can re-run
// it synchronously on every lever change. Concurrent calls are safe because
// each run works on its own copy of remaining capacity.
package engine

import "github.com/alexanderramin/whatif/internal/domain"

// Evaluate runs the full chain for one scenario: aggregate baseline and
// virtual capacity, shift demand, allocate greedily in priority order, and
// summarize. Identical inputs produce identical results.
func Evaluate(snap *domain.Snapshot, sc *domain.Scenario) *ScenarioResult {
	effective := AggregateCapacity(snap.Buckets, sc.VirtualResources, snap.Months)
	shifted := ShiftDemand(snap.Projects, sc.TimelineShifts, snap.Months)
	outcomes, usage := Allocate(effective, shifted, sc.PriorityOrder, snap.Months)
	return Summarize(outcomes, usage, snap.Months)
}
