package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtrevizo/tablero/internal/models"
)

// setupTestDB creates an in-memory database with the full schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func testProject(id, title string) models.Project {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Project{
		ID:          id,
		Title:       title,
		Description: "a description",
		PeopleCount: 3,
		Status:      models.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestInsertAndGetProject(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))
	ctx := context.Background()

	p := testProject("id-1", "Build API")
	require.NoError(t, repo.InsertProject(ctx, p))

	got, err := repo.GetProjectByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Build API", got.Title)
	assert.Equal(t, "a description", got.Description)
	assert.Equal(t, 3, got.PeopleCount)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))

	_, err := repo.GetProjectByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}

func TestUpdateProjectStatus(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.InsertProject(ctx, testProject("id-1", "Build API")))
	require.NoError(t, repo.UpdateProjectStatus(ctx, "id-1", models.StatusFinished))

	got, err := repo.GetProjectByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, got.Status)
}

func TestUpdateProjectStatusNotFound(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))

	err := repo.UpdateProjectStatus(context.Background(), "missing", models.StatusFinished)
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}

func TestGetAllProjectsOrder(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, title := range []string{"First", "Second", "Third"} {
		p := testProject(title, title)
		p.CreatedAt = base.Add(time.Duration(i) * time.Second)
		p.UpdatedAt = p.CreatedAt
		require.NoError(t, repo.InsertProject(ctx, p))
	}

	projects, err := repo.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "First", projects[0].Title)
	assert.Equal(t, "Second", projects[1].Title)
	assert.Equal(t, "Third", projects[2].Title)
}

func TestGetAllProjectsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepo(setupTestDB(t))

	projects, err := repo.GetAllProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}
