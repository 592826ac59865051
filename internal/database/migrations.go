package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			people_count INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Index for per-column listing
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_projects_status
		ON projects(status, created_at)
	`)
	return err
}
