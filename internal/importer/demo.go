package importer

import "github.com/alexanderramin/whatif/internal/domain"

// DemoSnapshot builds a small baseline for trying the planner without an
// upload: six months, eight buckets, ten projects, with enough contention
// that reordering and virtual hires visibly change the outcome.
func DemoSnapshot() *domain.Snapshot {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

	flat := func(hours float64) map[string]float64 {
		capacity := make(map[string]float64, len(months))
		for _, m := range months {
			capacity[m] = hours
		}
		return capacity
	}
	ramp := func(hours ...float64) map[string]float64 {
		demand := make(map[string]float64, len(months))
		for i, h := range hours {
			demand[months[i]] = h
		}
		return demand
	}

	snap := &domain.Snapshot{
		Name:     "demo",
		FileName: "demo_data.xlsm",
		Months:   months,
		Buckets: []domain.CapacityBucket{
			{ID: "bucket_0", Team: "Digital", Role: "UX Designer", Location: "London", MonthlyCapacity: flat(320)},
			{ID: "bucket_1", Team: "Digital", Role: "UX Designer", Location: "Pune", MonthlyCapacity: flat(480)},
			{ID: "bucket_2", Team: "Digital", Role: "Developer", Location: "London", MonthlyCapacity: flat(640)},
			{ID: "bucket_3", Team: "Digital", Role: "Developer", Location: "Pune", MonthlyCapacity: flat(960)},
			{ID: "bucket_4", Team: "Strategy", Role: "Consultant", Location: "London", MonthlyCapacity: flat(480)},
			{ID: "bucket_5", Team: "Strategy", Role: "Consultant", Location: "New York", MonthlyCapacity: flat(320)},
			{ID: "bucket_6", Team: "Analytics", Role: "Data Analyst", Location: "Pune", MonthlyCapacity: flat(480)},
			{ID: "bucket_7", Team: "Analytics", Role: "Data Analyst", Location: "London", MonthlyCapacity: flat(320)},
		},
		Projects: []domain.Project{
			{ID: "project_3", Name: "Project Delta", Team: "Digital", Role: "Developer", Location: "Pune",
				MonthlyDemand: ramp(600, 700, 800, 750, 650, 550), TotalDemand: 4050},
			{ID: "project_9", Name: "Project Kappa", Team: "Digital", Role: "Developer", Location: "Pune",
				MonthlyDemand: ramp(500, 550, 600, 580, 520, 480), TotalDemand: 3230},
			{ID: "project_2", Name: "Project Gamma", Team: "Digital", Role: "Developer", Location: "London",
				MonthlyDemand: ramp(400, 450, 500, 450, 400, 350), TotalDemand: 2550},
			{ID: "project_6", Name: "Project Eta", Team: "Analytics", Role: "Data Analyst", Location: "Pune",
				MonthlyDemand: ramp(300, 350, 400, 380, 340, 300), TotalDemand: 2070},
			{ID: "project_1", Name: "Project Beta", Team: "Digital", Role: "UX Designer", Location: "Pune",
				MonthlyDemand: ramp(300, 350, 400, 350, 300, 250), TotalDemand: 1950},
			{ID: "project_4", Name: "Project Epsilon", Team: "Strategy", Role: "Consultant", Location: "London",
				MonthlyDemand: ramp(250, 300, 350, 300, 250, 200), TotalDemand: 1650},
			{ID: "project_7", Name: "Project Theta", Team: "Analytics", Role: "Data Analyst", Location: "London",
				MonthlyDemand: ramp(200, 220, 250, 230, 210, 190), TotalDemand: 1300},
			{ID: "project_5", Name: "Project Zeta", Team: "Strategy", Role: "Consultant", Location: "New York",
				MonthlyDemand: ramp(180, 200, 220, 200, 180, 160), TotalDemand: 1140},
			{ID: "project_8", Name: "Project Iota", Team: "Digital", Role: "UX Designer", Location: "London",
				MonthlyDemand: ramp(150, 160, 170, 160, 150, 140), TotalDemand: 930},
			{ID: "project_0", Name: "Project Alpha", Team: "Digital", Role: "UX Designer", Location: "London",
				MonthlyDemand: ramp(200, 180, 160, 140, 120, 100), TotalDemand: 900},
		},
	}

	return snap
}
