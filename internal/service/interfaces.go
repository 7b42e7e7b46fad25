package service

import (
	"context"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/engine"
	"github.com/alexanderramin/whatif/internal/importer"
)

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	Snapshot     *domain.Snapshot
	BucketCount  int
	ProjectCount int
}

type SnapshotService interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
	LoadDemo(ctx context.Context) (*ImportResult, error)
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	List(ctx context.Context) ([]*domain.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type ScenarioService interface {
	Create(ctx context.Context, snapshotID, name string) (*domain.Scenario, error)
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	ListBySnapshot(ctx context.Context, snapshotID string) ([]*domain.Scenario, error)
	Rename(ctx context.Context, id, name string) (*domain.Scenario, error)
	Delete(ctx context.Context, id string) error

	SetPriorityOrder(ctx context.Context, id string, order []string) (*domain.Scenario, error)
	MoveProject(ctx context.Context, id, projectID string, rank int) (*domain.Scenario, error)
	AddVirtualResource(ctx context.Context, id string, v domain.VirtualResource) (*domain.Scenario, error)
	RemoveVirtualResource(ctx context.Context, id string, index int) (*domain.Scenario, error)
	SetTimelineShift(ctx context.Context, id, projectID string, shift int) (*domain.Scenario, error)
}

// EvaluateService runs the recomputation pipeline against stored state.
type EvaluateService interface {
	Evaluate(ctx context.Context, scenarioID string) (*engine.ScenarioResult, error)
	Baseline(ctx context.Context, snapshotID string) (*engine.ScenarioResult, error)
}
