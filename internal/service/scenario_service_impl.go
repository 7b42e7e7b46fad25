package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/repository"
)

type scenarioService struct {
	scenarios repository.ScenarioRepo
	snapshots repository.SnapshotRepo
}

func NewScenarioService(scenarios repository.ScenarioRepo, snapshots repository.SnapshotRepo) ScenarioService {
	return &scenarioService{scenarios: scenarios, snapshots: snapshots}
}

func (s *scenarioService) Create(ctx context.Context, snapshotID, name string) (*domain.Scenario, error) {
	snap, err := s.snapshots.GetByID(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	now := time.Now().UTC().Truncate(time.Second)
	sc := &domain.Scenario{
		ID:             uuid.New().String(),
		SnapshotID:     snap.ID,
		Name:           name,
		PriorityOrder:  snap.DefaultPriorityOrder(),
		TimelineShifts: make(map[string]int),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.scenarios.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *scenarioService) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	return s.scenarios.GetByID(ctx, id)
}

func (s *scenarioService) ListBySnapshot(ctx context.Context, snapshotID string) ([]*domain.Scenario, error) {
	return s.scenarios.ListBySnapshot(ctx, snapshotID)
}

func (s *scenarioService) Rename(ctx context.Context, id, name string) (*domain.Scenario, error) {
	if name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}
	return s.mutate(ctx, id, func(sc *domain.Scenario, _ *domain.Snapshot) error {
		sc.Name = name
		return nil
	})
}

func (s *scenarioService) Delete(ctx context.Context, id string) error {
	if _, err := s.scenarios.GetByID(ctx, id); err != nil {
		return err
	}
	return s.scenarios.Delete(ctx, id)
}

func (s *scenarioService) SetPriorityOrder(ctx context.Context, id string, order []string) (*domain.Scenario, error) {
	return s.mutate(ctx, id, func(sc *domain.Scenario, snap *domain.Snapshot) error {
		for _, pid := range order {
			if snap.ProjectByID(pid) == nil {
				return fmt.Errorf("unknown project %q", pid)
			}
		}
		return sc.SetPriorityOrder(order)
	})
}

func (s *scenarioService) MoveProject(ctx context.Context, id, projectID string, rank int) (*domain.Scenario, error) {
	return s.mutate(ctx, id, func(sc *domain.Scenario, _ *domain.Snapshot) error {
		return sc.MoveProject(projectID, rank)
	})
}

func (s *scenarioService) AddVirtualResource(ctx context.Context, id string, v domain.VirtualResource) (*domain.Scenario, error) {
	return s.mutate(ctx, id, func(sc *domain.Scenario, _ *domain.Snapshot) error {
		return sc.AddVirtualResource(v)
	})
}

func (s *scenarioService) RemoveVirtualResource(ctx context.Context, id string, index int) (*domain.Scenario, error) {
	return s.mutate(ctx, id, func(sc *domain.Scenario, _ *domain.Snapshot) error {
		return sc.RemoveVirtualResource(index)
	})
}

func (s *scenarioService) SetTimelineShift(ctx context.Context, id, projectID string, shift int) (*domain.Scenario, error) {
	return s.mutate(ctx, id, func(sc *domain.Scenario, snap *domain.Snapshot) error {
		if snap.ProjectByID(projectID) == nil {
			return fmt.Errorf("unknown project %q", projectID)
		}
		return sc.SetTimelineShift(projectID, shift)
	})
}

// mutate loads the scenario and its snapshot, re-anchors the priority order
// to the snapshot's current project set, applies fn, and persists the result.
func (s *scenarioService) mutate(ctx context.Context, id string, fn func(sc *domain.Scenario, snap *domain.Snapshot) error) (*domain.Scenario, error) {
	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshots.GetByID(ctx, sc.SnapshotID)
	if err != nil {
		return nil, err
	}

	sc.NormalizeOrder(snap)
	if err := fn(sc, snap); err != nil {
		return nil, err
	}

	sc.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	if err := s.scenarios.Update(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}
