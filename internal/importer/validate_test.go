package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *SnapshotSchema {
	return &SnapshotSchema{
		Months: []string{"Jan", "Feb"},
		Capacity: CapacitySection{
			Buckets: []BucketRecord{
				{ID: "bucket_0", Team: "Digital", Role: "Developer", Location: "Pune",
					MonthlyCapacity: map[string]float64{"Jan": 100, "Feb": 100}},
			},
		},
		Demand: DemandSection{
			Projects: []ProjectRecord{
				{ID: "project_0", Name: "Alpha", Team: "Digital", Role: "Developer", Location: "Pune",
					MonthlyDemand: map[string]float64{"Jan": 60}},
			},
		},
	}
}

func TestValidateSnapshotSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(validSchema()))
}

func TestValidateSnapshotSchema_CollectsAllErrors(t *testing.T) {
	schema := validSchema()
	schema.Months = nil
	schema.Capacity.Months = nil
	schema.Demand.Months = nil
	schema.Capacity.Buckets[0].MonthlyCapacity["Jan"] = -5
	schema.Demand.Projects = append(schema.Demand.Projects, ProjectRecord{ID: "project_0"})

	errs := ValidateSnapshotSchema(schema)
	require.NotEmpty(t, errs)
	assert.GreaterOrEqual(t, len(errs), 4, "missing months, negative hours, duplicate id, missing name all reported")
}

func TestValidateSnapshotSchema_DuplicateMonths(t *testing.T) {
	schema := validSchema()
	schema.Months = []string{"Jan", "Jan"}

	errs := ValidateSnapshotSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate month")
}

func TestValidateSnapshotSchema_NegativeDemand(t *testing.T) {
	schema := validSchema()
	schema.Demand.Projects[0].MonthlyDemand["Jan"] = -1

	errs := ValidateSnapshotSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "negative hours")
}

func TestValidateSnapshotSchema_UnknownMonthLabelTolerated(t *testing.T) {
	// The engine simply never allocates demand recorded outside the window.
	schema := validSchema()
	schema.Demand.Projects[0].MonthlyDemand["Dec"] = 40

	assert.Empty(t, ValidateSnapshotSchema(schema))
}
