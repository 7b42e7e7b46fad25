package engine

import "github.com/alexanderramin/whatif/internal/domain"

// Allocate runs the greedy allocation: months in chronological order (outer),
// projects strictly in priority order within each month (inner). Rank 1 is
// the head of the order. Remaining capacity is a private working copy of the
// effective table; unused hours in one month never carry into the next.
// Priority ids with no matching project record are skipped and contribute
// nothing. Returns per-project outcomes in priority order plus the per-bucket
// usage table.
func Allocate(
	effective map[domain.BucketKey]*domain.CapacityBucket,
	projects []domain.Project,
	order []string,
	months []string,
) ([]ProjectOutcome, map[domain.BucketKey]*BucketUsage) {
	byID := make(map[string]*domain.Project, len(projects))
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
	}

	usage := make(map[domain.BucketKey]*BucketUsage, len(effective))
	for key, b := range effective {
		u := &BucketUsage{
			Key:       key,
			Team:      b.Team,
			Role:      b.Role,
			Location:  b.Location,
			IsVirtual: b.IsVirtual,
			Capacity:  make(map[string]float64, len(months)),
			Consumed:  make(map[string]float64, len(months)),
			Remaining: make(map[string]float64, len(months)),
		}
		for _, m := range months {
			u.Capacity[m] = b.CapacityFor(m)
			u.Remaining[m] = b.CapacityFor(m)
			u.Consumed[m] = 0
		}
		usage[key] = u
	}

	outcomes := make([]ProjectOutcome, 0, len(order))
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue
		}
		outcomes = append(outcomes, ProjectOutcome{
			ProjectID: id,
			Name:      p.Name,
			Rank:      len(outcomes) + 1,
			Key:       p.Key(),
			Months:    make(map[string]MonthCell, len(months)),
		})
	}

	for _, month := range months {
		for i := range outcomes {
			out := &outcomes[i]
			demand := byID[out.ProjectID].DemandFor(month)

			cell := MonthCell{Demand: demand}
			if demand == 0 {
				cell.Status = domain.StatusNone
				out.Months[month] = cell
				continue
			}

			var available float64
			u := usage[out.Key]
			if u != nil {
				available = u.Remaining[month]
			}

			switch {
			case available >= demand:
				cell.Status = domain.StatusStaffed
				cell.Allocated = demand
			case available > 0:
				cell.Status = domain.StatusPartial
				cell.Allocated = available
			default:
				cell.Status = domain.StatusUnstaffed
			}
			cell.Deficit = demand - cell.Allocated

			if u != nil && cell.Allocated > 0 {
				u.Remaining[month] -= cell.Allocated
				u.Consumed[month] += cell.Allocated
			}

			out.TotalDemand += demand
			out.TotalDeficit += cell.Deficit
			out.Months[month] = cell
		}
	}

	return outcomes, usage
}
