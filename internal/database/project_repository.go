package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mtrevizo/tablero/internal/models"
)

// ProjectRepo handles all project-related database operations.
// It satisfies store.Persister so the in-memory store can write through.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a repository wrapping the given database connection.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// InsertProject stores a newly created project.
func (r *ProjectRepo) InsertProject(ctx context.Context, p models.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, people_count, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.PeopleCount, p.Status.String(), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project '%s': %w", p.Title, err)
	}
	return nil
}

// UpdateProjectStatus records a status transition.
func (r *ProjectRepo) UpdateProjectStatus(ctx context.Context, id string, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status for project %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for project %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", id, models.ErrProjectNotFound)
	}
	return nil
}

// GetProjectByID retrieves a single project.
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, people_count, status, created_at, updated_at
		 FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, models.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return p, nil
}

// GetAllProjects retrieves all projects in creation order.
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, people_count, status, created_at, updated_at
		 FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var (
		p         models.Project
		statusStr string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Description, &p.PeopleCount, &statusStr, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	status, err := models.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}
	p.Status = status
	return &p, nil
}
