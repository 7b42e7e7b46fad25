package engine

import (
	"math"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Summarize rolls raw allocation outcomes up into the scenario result:
// overall status per project, rounded utilization per bucket-month, and the
// portfolio totals.
func Summarize(
	outcomes []ProjectOutcome,
	usage map[domain.BucketKey]*BucketUsage,
	months []string,
) *ScenarioResult {
	res := &ScenarioResult{
		Months:   append([]string(nil), months...),
		Buckets:  usage,
		Projects: outcomes,
	}

	for i := range res.Projects {
		out := &res.Projects[i]
		out.Overall = overallStatus(out.Months)
		res.TotalDeficit += out.TotalDeficit

		switch out.Overall {
		case domain.StatusStaffed:
			res.StaffedCount++
		case domain.StatusPartial:
			res.PartialCount++
		case domain.StatusUnstaffed:
			res.UnstaffedCount++
		}
	}

	for _, u := range usage {
		u.UtilizationPct = make(map[string]int, len(months))
		for _, m := range months {
			u.UtilizationPct[m] = utilizationPct(u.Consumed[m], u.Capacity[m])
		}
	}

	return res
}

// overallStatus derives a project's window-wide status. Months without
// demand never influence it: staffed means every demand month was fully
// staffed, unstaffed means every demand month got nothing at all, and any
// partial allocation anywhere lands the project on partial. A project with
// no demand months reports none.
func overallStatus(cells map[string]MonthCell) domain.MonthStatus {
	demandMonths, staffedMonths, unstaffedMonths := 0, 0, 0
	for _, c := range cells {
		switch c.Status {
		case domain.StatusNone:
			continue
		case domain.StatusStaffed:
			staffedMonths++
		case domain.StatusUnstaffed:
			unstaffedMonths++
		}
		demandMonths++
	}

	switch {
	case demandMonths == 0:
		return domain.StatusNone
	case staffedMonths == demandMonths:
		return domain.StatusStaffed
	case unstaffedMonths == demandMonths:
		return domain.StatusUnstaffed
	default:
		return domain.StatusPartial
	}
}

// utilizationPct rounds consumed/capacity to a whole percent. Zero-capacity
// buckets report 0; they are not an error condition.
func utilizationPct(consumed, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(consumed / capacity * 100))
}
