package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/whatif/internal/db"
	"github.com/alexanderramin/whatif/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo over a DBTX, so the same code
// serves both direct access and transactional imports.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(dbtx db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: dbtx}
}

func (r *SQLiteSnapshotRepo) Create(ctx context.Context, s *domain.Snapshot) error {
	months, err := marshalJSON(s.Months)
	if err != nil {
		return err
	}

	query := `INSERT INTO snapshots (id, name, file_name, months, parsed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.FileName, months,
		timeToString(s.ParsedAt), timeToString(s.CreatedAt),
	); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	for i := range s.Buckets {
		if err := r.insertBucket(ctx, s.ID, &s.Buckets[i]); err != nil {
			return err
		}
	}
	for i := range s.Projects {
		if err := r.insertProject(ctx, s.ID, i, &s.Projects[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) insertBucket(ctx context.Context, snapshotID string, b *domain.CapacityBucket) error {
	capacity, err := marshalJSON(b.MonthlyCapacity)
	if err != nil {
		return err
	}
	query := `INSERT INTO capacity_buckets (id, snapshot_id, team, role, location, monthly_capacity)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		b.ID, snapshotID, b.Team, b.Role, b.Location, capacity,
	); err != nil {
		return fmt.Errorf("inserting capacity bucket %q: %w", b.ID, err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) insertProject(ctx context.Context, snapshotID string, seq int, p *domain.Project) error {
	demand, err := marshalJSON(p.MonthlyDemand)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (id, snapshot_id, seq, name, team, role, location, monthly_demand, total_demand)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, snapshotID, seq, p.Name, p.Team, p.Role, p.Location, demand, p.TotalDemand,
	); err != nil {
		return fmt.Errorf("inserting project %q: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	query := `SELECT id, name, file_name, months, parsed_at, created_at FROM snapshots WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSnapshot(row)
	if err != nil {
		return nil, err
	}

	if s.Buckets, err = r.listBuckets(ctx, id); err != nil {
		return nil, err
	}
	if s.Projects, err = r.listProjects(ctx, id); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSnapshotRepo) List(ctx context.Context) ([]*domain.Snapshot, error) {
	query := `SELECT id, name, file_name, months, parsed_at, created_at FROM snapshots ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, id string) error {
	// Bucket, project, and scenario rows cascade.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) listBuckets(ctx context.Context, snapshotID string) ([]domain.CapacityBucket, error) {
	query := `SELECT id, team, role, location, monthly_capacity FROM capacity_buckets
		WHERE snapshot_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing capacity buckets: %w", err)
	}
	defer rows.Close()

	var buckets []domain.CapacityBucket
	for rows.Next() {
		var b domain.CapacityBucket
		var capacityJSON string
		if err := rows.Scan(&b.ID, &b.Team, &b.Role, &b.Location, &capacityJSON); err != nil {
			return nil, fmt.Errorf("scanning capacity bucket: %w", err)
		}
		b.MonthlyCapacity = make(map[string]float64)
		if err := unmarshalJSON(capacityJSON, &b.MonthlyCapacity); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating capacity buckets: %w", err)
	}
	return buckets, nil
}

func (r *SQLiteSnapshotRepo) listProjects(ctx context.Context, snapshotID string) ([]domain.Project, error) {
	query := `SELECT id, name, team, role, location, monthly_demand, total_demand FROM projects
		WHERE snapshot_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var demandJSON string
		if err := rows.Scan(&p.ID, &p.Name, &p.Team, &p.Role, &p.Location, &demandJSON, &p.TotalDemand); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.MonthlyDemand = make(map[string]float64)
		if err := unmarshalJSON(demandJSON, &p.MonthlyDemand); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var monthsJSON string
	var parsedAtStr, createdAtStr sql.NullString

	err := row.Scan(&s.ID, &s.Name, &s.FileName, &monthsJSON, &parsedAtStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot not found")
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	if err := unmarshalJSON(monthsJSON, &s.Months); err != nil {
		return nil, err
	}
	s.ParsedAt = parseTime(parsedAtStr)
	s.CreatedAt = parseTime(createdAtStr)
	return &s, nil
}
