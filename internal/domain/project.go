package domain

// Project is one row of baseline demand: hours needed per month, mapped to a
// capacity bucket through the project's (team, role, location) triple.
type Project struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Team          string             `json:"team"`
	Role          string             `json:"role"`
	Location      string             `json:"location"`
	MonthlyDemand map[string]float64 `json:"monthly_demand"`
	TotalDemand   float64            `json:"total_demand"`
}

// Key returns the canonical key of the bucket this project draws from.
func (p *Project) Key() BucketKey {
	return NewBucketKey(p.Team, p.Role, p.Location)
}

// DemandFor returns the project's demand for a month, zero when the month is
// absent from the demand mapping.
func (p *Project) DemandFor(month string) float64 {
	return p.MonthlyDemand[month]
}

// ComputeTotalDemand sums the monthly demand mapping.
func (p *Project) ComputeTotalDemand() float64 {
	var total float64
	for _, hours := range p.MonthlyDemand {
		total += hours
	}
	return total
}
