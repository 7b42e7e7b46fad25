package repository

import (
	"context"

	"github.com/alexanderramin/whatif/internal/domain"
)

// SnapshotRepo stores immutable baselines. Create writes the snapshot header
// plus all bucket and project rows; callers wanting atomicity run it inside a
// unit of work with tx-scoped repositories.
type SnapshotRepo interface {
	Create(ctx context.Context, s *domain.Snapshot) error
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	List(ctx context.Context) ([]*domain.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// ScenarioRepo stores scenario lever state.
type ScenarioRepo interface {
	Create(ctx context.Context, sc *domain.Scenario) error
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	ListBySnapshot(ctx context.Context, snapshotID string) ([]*domain.Scenario, error)
	Update(ctx context.Context, sc *domain.Scenario) error
	Delete(ctx context.Context, id string) error
}
