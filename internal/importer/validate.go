package importer

import "fmt"

// ValidateSnapshotSchema checks a snapshot schema before conversion.
// Returns a slice of all validation errors found. Month labels referenced by
// capacity or demand maps but missing from the month list are not errors: the
// engine treats them as unallocatable and ignores them.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	errs = append(errs, validateMonths(effectiveMonths(schema))...)
	errs = append(errs, validateBuckets(schema.Capacity.Buckets)...)
	errs = append(errs, validateProjects(schema.Demand.Projects)...)

	return errs
}

func validateMonths(months []string) []error {
	var errs []error

	if len(months) == 0 {
		errs = append(errs, fmt.Errorf("months: at least one month label is required"))
	}
	seen := make(map[string]bool, len(months))
	for i, m := range months {
		if m == "" {
			errs = append(errs, fmt.Errorf("months[%d]: empty month label", i))
			continue
		}
		if seen[m] {
			errs = append(errs, fmt.Errorf("months[%d]: duplicate month label %q", i, m))
		}
		seen[m] = true
	}

	return errs
}

func validateBuckets(buckets []BucketRecord) []error {
	var errs []error

	ids := make(map[string]bool, len(buckets))
	for i, b := range buckets {
		prefix := fmt.Sprintf("capacity.buckets[%d]", i)

		if b.ID != "" {
			if ids[b.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate bucket id %q", prefix, b.ID))
			}
			ids[b.ID] = true
		}
		for m, hours := range b.MonthlyCapacity {
			if hours < 0 {
				errs = append(errs, fmt.Errorf("%s.monthly_capacity[%s]: negative hours %v", prefix, m, hours))
			}
		}
	}

	return errs
}

func validateProjects(projects []ProjectRecord) []error {
	var errs []error

	ids := make(map[string]bool, len(projects))
	for i, p := range projects {
		prefix := fmt.Sprintf("demand.projects[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate project id %q", prefix, p.ID))
		} else {
			ids[p.ID] = true
		}

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		for m, hours := range p.MonthlyDemand {
			if hours < 0 {
				errs = append(errs, fmt.Errorf("%s.monthly_demand[%s]: negative hours %v", prefix, m, hours))
			}
		}
		if p.TotalDemand != nil && *p.TotalDemand < 0 {
			errs = append(errs, fmt.Errorf("%s.total_demand: negative hours %v", prefix, *p.TotalDemand))
		}
	}

	return errs
}
