package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mtrevizo/tablero/internal/config"
	"github.com/mtrevizo/tablero/internal/database"
	"github.com/mtrevizo/tablero/internal/store"
)

// CLI is the application context shared by all CLI commands: the open
// database handle, the repository over it, the project store seeded from
// disk, and the loaded configuration.
type CLI struct {
	DB    *sql.DB
	Repo  *database.ProjectRepo
	Store *store.ProjectStore
	Cfg   *config.Config

	ownsDB bool
}

// NewCLI initializes the CLI context with the default on-disk database.
func NewCLI(ctx context.Context) (*CLI, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c, err := NewCLIWithDB(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	c.ownsDB = true
	return c, nil
}

// NewCLIWithDB builds a CLI context around an existing database handle.
// The caller keeps ownership of the handle; Close will not close it.
func NewCLIWithDB(ctx context.Context, db *sql.DB) (*CLI, error) {
	repo := database.NewProjectRepo(db)

	projects, err := repo.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CLI{
		DB:   db,
		Repo: repo,
		Store: store.New(
			store.WithPersister(repo),
			store.WithProjects(projects),
		),
		Cfg: cfg,
	}, nil
}

// Close cleans up CLI resources.
func (c *CLI) Close() error {
	if c.ownsDB {
		return c.DB.Close()
	}
	return nil
}
