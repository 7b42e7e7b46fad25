package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/whatif/internal/db"
	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/importer"
	"github.com/alexanderramin/whatif/internal/repository"
)

type snapshotService struct {
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSnapshotService(
	snapshots repository.SnapshotRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		snapshots: snapshots,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *snapshotService) ImportFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["snapshot"] = result.Snapshot.Name
			fields["bucket_count"] = result.BucketCount
			fields["project_count"] = result.ProjectCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-snapshot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	snap := importer.Convert(schema)
	return s.store(ctx, snap)
}

func (s *snapshotService) LoadDemo(ctx context.Context) (*ImportResult, error) {
	return s.store(ctx, importer.DemoSnapshot())
}

// store writes the snapshot inside a transaction so a failure partway through
// the bucket and project inserts leaves no trace.
func (s *snapshotService) store(ctx context.Context, snap *domain.Snapshot) (*ImportResult, error) {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	snap.CreatedAt = time.Now().UTC().Truncate(time.Second)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSnapshotRepo(tx).Create(ctx, snap)
	})
	if err != nil {
		return nil, fmt.Errorf("storing snapshot: %w", err)
	}

	return &ImportResult{
		Snapshot:     snap,
		BucketCount:  len(snap.Buckets),
		ProjectCount: len(snap.Projects),
	}, nil
}

func (s *snapshotService) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	return s.snapshots.GetByID(ctx, id)
}

func (s *snapshotService) List(ctx context.Context) ([]*domain.Snapshot, error) {
	return s.snapshots.List(ctx)
}

func (s *snapshotService) Delete(ctx context.Context, id string) error {
	if _, err := s.snapshots.GetByID(ctx, id); err != nil {
		return err
	}
	return s.snapshots.Delete(ctx, id)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("snapshot validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
