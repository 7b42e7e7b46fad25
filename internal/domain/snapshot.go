package domain

import "time"

// Snapshot is an immutable baseline produced by the external parsing
// collaborator: the ordered month window plus capacity and demand records.
// The engine never mutates a snapshot; every lever change re-evaluates
// against the same baseline.
type Snapshot struct {
	ID        string
	Name      string
	FileName  string
	Months    []string
	Buckets   []CapacityBucket
	Projects  []Project
	ParsedAt  time.Time
	CreatedAt time.Time
}

// ProjectByID looks up a project record, nil when the id is unknown.
func (s *Snapshot) ProjectByID(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// DefaultPriorityOrder returns the project ids in snapshot order. Converted
// snapshots keep projects sorted by descending total demand, which is the
// initial precedence a new scenario starts from.
func (s *Snapshot) DefaultPriorityOrder() []string {
	order := make([]string, len(s.Projects))
	for i := range s.Projects {
		order[i] = s.Projects[i].ID
	}
	return order
}
