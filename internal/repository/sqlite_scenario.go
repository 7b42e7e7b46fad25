package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/whatif/internal/db"
	"github.com/alexanderramin/whatif/internal/domain"
)

// SQLiteScenarioRepo implements ScenarioRepo over a DBTX. Lever state is
// stored as JSON columns so lever edits are single-row updates.
type SQLiteScenarioRepo struct {
	db db.DBTX
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(dbtx db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: dbtx}
}

func (r *SQLiteScenarioRepo) Create(ctx context.Context, sc *domain.Scenario) error {
	order, virtual, shifts, err := marshalLevers(sc)
	if err != nil {
		return err
	}
	query := `INSERT INTO scenarios (id, snapshot_id, name, priority_order, virtual_resources, timeline_shifts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		sc.ID, sc.SnapshotID, sc.Name, order, virtual, shifts,
		timeToString(sc.CreatedAt), timeToString(sc.UpdatedAt),
	); err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	query := `SELECT id, snapshot_id, name, priority_order, virtual_resources, timeline_shifts, created_at, updated_at
		FROM scenarios WHERE id = ?`
	return scanScenario(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteScenarioRepo) ListBySnapshot(ctx context.Context, snapshotID string) ([]*domain.Scenario, error) {
	query := `SELECT id, snapshot_id, name, priority_order, virtual_resources, timeline_shifts, created_at, updated_at
		FROM scenarios WHERE snapshot_id = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *SQLiteScenarioRepo) Update(ctx context.Context, sc *domain.Scenario) error {
	order, virtual, shifts, err := marshalLevers(sc)
	if err != nil {
		return err
	}
	query := `UPDATE scenarios
		SET name = ?, priority_order = ?, virtual_resources = ?, timeline_shifts = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, sc.Name, order, virtual, shifts, timeToString(sc.UpdatedAt), sc.ID)
	if err != nil {
		return fmt.Errorf("updating scenario: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("scenario not found")
	}
	return nil
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	return nil
}

func marshalLevers(sc *domain.Scenario) (order, virtual, shifts string, err error) {
	if order, err = marshalJSON(sc.PriorityOrder); err != nil {
		return "", "", "", err
	}
	if virtual, err = marshalJSON(sc.VirtualResources); err != nil {
		return "", "", "", err
	}
	if shifts, err = marshalJSON(sc.TimelineShifts); err != nil {
		return "", "", "", err
	}
	return order, virtual, shifts, nil
}

func scanScenario(row rowScanner) (*domain.Scenario, error) {
	var sc domain.Scenario
	var orderJSON, virtualJSON, shiftsJSON string
	var createdAtStr, updatedAtStr sql.NullString

	err := row.Scan(&sc.ID, &sc.SnapshotID, &sc.Name, &orderJSON, &virtualJSON, &shiftsJSON, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scenario not found")
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}

	if err := unmarshalJSON(orderJSON, &sc.PriorityOrder); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(virtualJSON, &sc.VirtualResources); err != nil {
		return nil, err
	}
	sc.TimelineShifts = make(map[string]int)
	if err := unmarshalJSON(shiftsJSON, &sc.TimelineShifts); err != nil {
		return nil, err
	}
	sc.CreatedAt = parseTime(createdAtStr)
	sc.UpdatedAt = parseTime(updatedAtStr)
	return &sc, nil
}
