package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		vendor TEXT NOT NULL,
		production_number TEXT NOT NULL,
		pm TEXT NOT NULL DEFAULT '',
		manager TEXT NOT NULL DEFAULT '',
		fat_date TEXT,
		delivery_date TEXT,
		process_stage TEXT NOT NULL DEFAULT 'pending_inspection'
			CHECK(process_stage IN ('pending_inspection','confirmed_inspection','inspection_completed','confirmed_shipment','shipment_completed')),
		health_status TEXT NOT NULL DEFAULT 'normal'
			CHECK(health_status IN ('normal','delayed','completed')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS management_items (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		production_number TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		manager TEXT NOT NULL DEFAULT '',
		deadline TEXT,
		warning_days INTEGER NOT NULL DEFAULT 7 CHECK(warning_days >= 0),
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		assignee TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'Medium'
			CHECK(priority IN ('High','Medium','Low')),
		status TEXT NOT NULL DEFAULT 'todo'
			CHECK(status IN ('todo','doing','done')),
		due_date TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS support_tickets (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		type TEXT NOT NULL CHECK(type IN ('technical','resource','access','etc')),
		priority TEXT NOT NULL CHECK(priority IN ('low','normal','high')),
		content TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activity_events (
		id TEXT PRIMARY KEY,
		actor TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		target TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	// Country was added after the first release.
	`ALTER TABLE projects ADD COLUMN country TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_projects_stage ON projects(process_stage)`,
	`CREATE INDEX IF NOT EXISTS idx_items_project ON management_items(project_id, order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_items_deadline ON management_items(deadline)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status_position ON tasks(status, position)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_created ON activity_events(created_at)`,
}
