package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the full schema. Statements are idempotent and re-run on
// every open; lever state (priority order, virtual resources, timeline
// shifts) is stored as JSON text since the engine consumes it wholesale.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		file_name  TEXT NOT NULL DEFAULT '',
		months     TEXT NOT NULL,
		parsed_at  TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS capacity_buckets (
		id               TEXT NOT NULL,
		snapshot_id      TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		team             TEXT NOT NULL,
		role             TEXT NOT NULL,
		location         TEXT NOT NULL,
		monthly_capacity TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT NOT NULL,
		snapshot_id    TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		seq            INTEGER NOT NULL DEFAULT 0,
		name           TEXT NOT NULL,
		team           TEXT NOT NULL,
		role           TEXT NOT NULL,
		location       TEXT NOT NULL,
		monthly_demand TEXT NOT NULL,
		total_demand   REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (snapshot_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS scenarios (
		id                TEXT PRIMARY KEY,
		snapshot_id       TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		priority_order    TEXT NOT NULL DEFAULT '[]',
		virtual_resources TEXT NOT NULL DEFAULT '[]',
		timeline_shifts   TEXT NOT NULL DEFAULT '{}',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_capacity_buckets_snapshot ON capacity_buckets(snapshot_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_snapshot ON projects(snapshot_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scenarios_snapshot ON scenarios(snapshot_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// The list re-runs on every open; future ALTER TABLE entries
			// surface as "duplicate column name" on upgraded databases.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
