package engine

import "github.com/alexanderramin/whatif/internal/domain"

// AggregateCapacity merges baseline buckets with virtual resources into the
// effective capacity table for one run, keyed by canonical bucket key.
// Baseline capacity is deep-copied, never aliased. A virtual resource adds
// its hours uniformly to every month in the window; one whose key matches no
// baseline bucket synthesizes a brand-new bucket with IsVirtual set.
// Baseline buckets that canonicalize to the same key merge additively.
func AggregateCapacity(
	buckets []domain.CapacityBucket,
	virtual []domain.VirtualResource,
	months []string,
) map[domain.BucketKey]*domain.CapacityBucket {
	effective := make(map[domain.BucketKey]*domain.CapacityBucket, len(buckets))

	for i := range buckets {
		b := &buckets[i]
		key := b.Key()
		eff, ok := effective[key]
		if !ok {
			eff = &domain.CapacityBucket{
				ID:              b.ID,
				Team:            b.Team,
				Role:            b.Role,
				Location:        b.Location,
				MonthlyCapacity: make(map[string]float64, len(months)),
			}
			effective[key] = eff
		}
		for _, m := range months {
			eff.MonthlyCapacity[m] += b.CapacityFor(m)
		}
	}

	for _, v := range virtual {
		key := v.Key()
		eff, ok := effective[key]
		if !ok {
			eff = &domain.CapacityBucket{
				Team:            v.Team,
				Role:            v.Role,
				Location:        v.Location,
				MonthlyCapacity: make(map[string]float64, len(months)),
				IsVirtual:       true,
			}
			effective[key] = eff
		}
		for _, m := range months {
			eff.MonthlyCapacity[m] += v.HoursPerMonth
		}
	}

	return effective
}
