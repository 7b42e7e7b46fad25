// Package importer loads baseline snapshots in the JSON shape produced by
// the external spreadsheet-parsing service. Parsing the spreadsheet itself is
// that service's job; this package only validates and converts its output.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a baseline snapshot.
type SnapshotSchema struct {
	Capacity CapacitySection  `json:"capacity"`
	Demand   DemandSection    `json:"demand"`
	Months   []string         `json:"months,omitempty"`
	Metadata *MetadataSection `json:"metadata,omitempty"`
}

// CapacitySection holds the parsed capacity sheet.
type CapacitySection struct {
	Buckets []BucketRecord `json:"buckets"`
	Months  []string       `json:"months,omitempty"`
}

// DemandSection holds the parsed demand sheet.
type DemandSection struct {
	Projects []ProjectRecord `json:"projects"`
	Months   []string        `json:"months,omitempty"`
}

// BucketRecord is one capacity row: hours per month for a
// (team, role, location) triple.
type BucketRecord struct {
	ID              string             `json:"id"`
	Team            string             `json:"team"`
	Role            string             `json:"role"`
	Location        string             `json:"location"`
	MonthlyCapacity map[string]float64 `json:"monthly_capacity"`
}

// ProjectRecord is one demand row: hours per month a project needs from its
// bucket. TotalDemand is recomputed when absent.
type ProjectRecord struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Team          string             `json:"team"`
	Role          string             `json:"role"`
	Location      string             `json:"location"`
	MonthlyDemand map[string]float64 `json:"monthly_demand"`
	TotalDemand   *float64           `json:"total_demand,omitempty"`
}

// MetadataSection carries provenance from the parsing service.
type MetadataSection struct {
	ParsedAt string `json:"parsed_at,omitempty"`
	FileName string `json:"file_name,omitempty"`
}

// LoadSnapshotSchema reads and parses a snapshot JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &schema, nil
}
