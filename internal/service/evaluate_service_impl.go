package service

import (
	"context"
	"time"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/engine"
	"github.com/alexanderramin/whatif/internal/repository"
)

type evaluateService struct {
	snapshots repository.SnapshotRepo
	scenarios repository.ScenarioRepo
	observer  UseCaseObserver
}

func NewEvaluateService(
	snapshots repository.SnapshotRepo,
	scenarios repository.ScenarioRepo,
	observers ...UseCaseObserver,
) EvaluateService {
	return &evaluateService{
		snapshots: snapshots,
		scenarios: scenarios,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *evaluateService) Evaluate(ctx context.Context, scenarioID string) (result *engine.ScenarioResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"scenario": scenarioID}
	defer func() {
		s.observe(ctx, "evaluate-scenario", startedAt, fields, result, err)
	}()

	sc, err := s.scenarios.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshots.GetByID(ctx, sc.SnapshotID)
	if err != nil {
		return nil, err
	}

	sc.NormalizeOrder(snap)
	return engine.Evaluate(snap, sc), nil
}

// Baseline evaluates a snapshot with no levers applied, so the output shows
// the staffing picture exactly as imported.
func (s *evaluateService) Baseline(ctx context.Context, snapshotID string) (result *engine.ScenarioResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"snapshot": snapshotID}
	defer func() {
		s.observe(ctx, "evaluate-baseline", startedAt, fields, result, err)
	}()

	snap, err := s.snapshots.GetByID(ctx, snapshotID)
	if err != nil {
		return nil, err
	}

	sc := &domain.Scenario{
		SnapshotID:    snap.ID,
		PriorityOrder: snap.DefaultPriorityOrder(),
	}
	return engine.Evaluate(snap, sc), nil
}

func (s *evaluateService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, result *engine.ScenarioResult, err error) {
	if result != nil {
		fields["total_deficit"] = result.TotalDeficit
		fields["unstaffed_count"] = result.UnstaffedCount
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
