package domain

import (
	"fmt"
	"time"
)

// Timeline shifts accepted from callers are bounded to this range. The
// allocation engine does not rely on the bound: any shift that moves demand
// outside the month window simply drops those hours.
const (
	MinTimelineShift = -6
	MaxTimelineShift = 6
)

// Scenario is the serializable lever state a planner owns between runs:
// priority order, virtual resources, and per-project timeline shifts over one
// snapshot. Evaluation only ever reads it; all mutation happens through the
// explicit operations below.
type Scenario struct {
	ID               string
	SnapshotID       string
	Name             string
	PriorityOrder    []string
	VirtualResources []VirtualResource
	TimelineShifts   map[string]int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidateShift checks a timeline shift against the accepted range.
func ValidateShift(shift int) error {
	if shift < MinTimelineShift || shift > MaxTimelineShift {
		return fmt.Errorf("timeline shift %d out of range [%d, %d]", shift, MinTimelineShift, MaxTimelineShift)
	}
	return nil
}

// SetPriorityOrder replaces the priority order with a fresh total order.
// Duplicate ids are rejected; precedence is purely positional.
func (sc *Scenario) SetPriorityOrder(order []string) error {
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] {
			return fmt.Errorf("duplicate project id %q in priority order", id)
		}
		seen[id] = true
	}
	sc.PriorityOrder = append([]string(nil), order...)
	return nil
}

// MoveProject moves a project to the given 1-based rank, shifting the rest.
// Ranks beyond the ends clamp to the first or last position.
func (sc *Scenario) MoveProject(projectID string, rank int) error {
	from := -1
	for i, id := range sc.PriorityOrder {
		if id == projectID {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("project %q not in priority order", projectID)
	}

	to := rank - 1
	if to < 0 {
		to = 0
	}
	if to >= len(sc.PriorityOrder) {
		to = len(sc.PriorityOrder) - 1
	}

	order := append([]string(nil), sc.PriorityOrder...)
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]string{projectID}, order[to:]...)...)
	sc.PriorityOrder = order
	return nil
}

// AddVirtualResource appends a hypothetical hire. Multiple resources may
// target the same bucket key and accumulate additively at evaluation time.
func (sc *Scenario) AddVirtualResource(v VirtualResource) error {
	if v.HoursPerMonth <= 0 {
		return fmt.Errorf("virtual resource hours per month must be positive, got %v", v.HoursPerMonth)
	}
	sc.VirtualResources = append(sc.VirtualResources, v)
	return nil
}

// RemoveVirtualResource removes the resource at the given 0-based index.
func (sc *Scenario) RemoveVirtualResource(index int) error {
	if index < 0 || index >= len(sc.VirtualResources) {
		return fmt.Errorf("virtual resource index %d out of range (have %d)", index, len(sc.VirtualResources))
	}
	sc.VirtualResources = append(sc.VirtualResources[:index], sc.VirtualResources[index+1:]...)
	return nil
}

// SetTimelineShift records a per-project month offset. A zero shift clears
// the entry, since an absent shift is already the identity.
func (sc *Scenario) SetTimelineShift(projectID string, shift int) error {
	if err := ValidateShift(shift); err != nil {
		return err
	}
	if shift == 0 {
		delete(sc.TimelineShifts, projectID)
		return nil
	}
	if sc.TimelineShifts == nil {
		sc.TimelineShifts = make(map[string]int)
	}
	sc.TimelineShifts[projectID] = shift
	return nil
}

// ShiftFor returns the project's timeline shift, zero when unset.
func (sc *Scenario) ShiftFor(projectID string) int {
	return sc.TimelineShifts[projectID]
}

// NormalizeOrder reconciles the priority order with the snapshot's project
// set: stale ids are dropped and projects missing from the order are appended
// in snapshot order (descending total demand). The result stays a total
// order with no duplicates.
func (sc *Scenario) NormalizeOrder(snap *Snapshot) {
	known := make(map[string]bool, len(snap.Projects))
	for i := range snap.Projects {
		known[snap.Projects[i].ID] = true
	}

	var order []string
	seen := make(map[string]bool, len(sc.PriorityOrder))
	for _, id := range sc.PriorityOrder {
		if known[id] && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, id := range snap.DefaultPriorityOrder() {
		if !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	sc.PriorityOrder = order
}
