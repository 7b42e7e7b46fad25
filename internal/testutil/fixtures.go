package testutil

import (
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/google/uuid"
)

// TestMonths is the default planning window used by fixtures.
var TestMonths = []string{"Jan", "Feb", "Mar"}

// Bucket options
type BucketOption func(*domain.CapacityBucket)

func WithBucketID(id string) BucketOption {
	return func(b *domain.CapacityBucket) {
		b.ID = id
	}
}

func WithCapacity(hours map[string]float64) BucketOption {
	return func(b *domain.CapacityBucket) {
		b.MonthlyCapacity = hours
	}
}

// NewTestBucket creates a capacity bucket with 100 hours in every test month.
func NewTestBucket(team, role, location string, opts ...BucketOption) domain.CapacityBucket {
	b := domain.CapacityBucket{
		ID:              uuid.New().String(),
		Team:            team,
		Role:            role,
		Location:        location,
		MonthlyCapacity: make(map[string]float64, len(TestMonths)),
	}
	for _, m := range TestMonths {
		b.MonthlyCapacity[m] = 100
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithDemand(hours map[string]float64) ProjectOption {
	return func(p *domain.Project) {
		p.MonthlyDemand = hours
	}
}

// NewTestProject creates a project demanding 50 hours in every test month.
func NewTestProject(name, team, role, location string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Team:          team,
		Role:          role,
		Location:      location,
		MonthlyDemand: make(map[string]float64, len(TestMonths)),
	}
	for _, m := range TestMonths {
		p.MonthlyDemand[m] = 50
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.TotalDemand = p.ComputeTotalDemand()
	return p
}

// Snapshot options
type SnapshotOption func(*domain.Snapshot)

func WithMonths(months []string) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.Months = months
	}
}

func WithBuckets(buckets ...domain.CapacityBucket) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.Buckets = buckets
	}
}

func WithProjects(projects ...domain.Project) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.Projects = projects
	}
}

// NewTestSnapshot creates a snapshot over TestMonths with no buckets or
// projects unless options provide them.
func NewTestSnapshot(name string, opts ...SnapshotOption) *domain.Snapshot {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Snapshot{
		ID:        uuid.New().String(),
		Name:      name,
		FileName:  name + ".json",
		Months:    append([]string(nil), TestMonths...),
		ParsedAt:  now,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestScenario creates a scenario against the given snapshot with the
// snapshot's default priority order and no levers applied.
func NewTestScenario(snap *domain.Snapshot, name string) *domain.Scenario {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Scenario{
		ID:             uuid.New().String(),
		SnapshotID:     snap.ID,
		Name:           name,
		PriorityOrder:  snap.DefaultPriorityOrder(),
		TimelineShifts: make(map[string]int),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
