package engine

import "github.com/alexanderramin/whatif/internal/domain"

// ShiftDemand applies each project's timeline shift: demand sitting at month
// index i moves to index i+s within the ordered month window. Hours that land
// outside the window are dropped, not clamped to the boundary month. When two
// source months land on the same destination their hours sum, never
// overwrite. A zero or absent shift is the identity. Input projects are never
// mutated; the returned slice carries fresh demand maps.
func ShiftDemand(
	projects []domain.Project,
	shifts map[string]int,
	months []string,
) []domain.Project {
	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m] = i
	}

	out := make([]domain.Project, len(projects))
	for pi := range projects {
		p := projects[pi]
		shifted := p
		shifted.MonthlyDemand = make(map[string]float64, len(p.MonthlyDemand))

		s := shifts[p.ID]
		if s == 0 {
			for m, hours := range p.MonthlyDemand {
				shifted.MonthlyDemand[m] = hours
			}
			out[pi] = shifted
			continue
		}

		for m, hours := range p.MonthlyDemand {
			i, ok := index[m]
			if !ok {
				// Demand on a month label outside the window can never
				// be placed relative to it; it stays unallocatable.
				continue
			}
			j := i + s
			if j < 0 || j >= len(months) {
				continue
			}
			shifted.MonthlyDemand[months[j]] += hours
		}
		out[pi] = shifted
	}

	return out
}
