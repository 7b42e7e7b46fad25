package domain

// CapacityBucket is the unit of supply: hours available per month for one
// (team, role, location) triple. Buckets parsed from the baseline carry
// IsVirtual false; buckets synthesized purely from virtual resources carry
// IsVirtual true.
type CapacityBucket struct {
	ID              string             `json:"id"`
	Team            string             `json:"team"`
	Role            string             `json:"role"`
	Location        string             `json:"location"`
	MonthlyCapacity map[string]float64 `json:"monthly_capacity"`
	IsVirtual       bool               `json:"is_virtual,omitempty"`
}

// Key returns the canonical bucket key for this bucket.
func (b *CapacityBucket) Key() BucketKey {
	return NewBucketKey(b.Team, b.Role, b.Location)
}

// CapacityFor returns the bucket's capacity for a month, zero when the month
// is absent from the capacity mapping.
func (b *CapacityBucket) CapacityFor(month string) float64 {
	return b.MonthlyCapacity[month]
}

// VirtualResource is a hypothetical hire: HoursPerMonth is added to the
// matching bucket in every month of the planning window. A resource whose
// key matches no baseline bucket synthesizes a brand-new virtual bucket.
type VirtualResource struct {
	Team          string  `json:"team"`
	Role          string  `json:"role"`
	Location      string  `json:"location"`
	HoursPerMonth float64 `json:"hours_per_month"`
}

// Key returns the canonical bucket key this resource contributes to.
func (v VirtualResource) Key() BucketKey {
	return NewBucketKey(v.Team, v.Role, v.Location)
}
