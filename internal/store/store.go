// Package store holds the in-memory project collection and its
// subscription mechanism. Every mutation ends with a synchronous
// notification round delivering a snapshot to each listener.
package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mtrevizo/tablero/internal/models"
)

// Listener receives a full snapshot of the project sequence after every
// mutation, never a partial diff.
type Listener func(projects []models.Project)

// Persister is the optional write-through backend. A nil Persister keeps
// the store memory-only (tests, ephemeral sessions). Persistence failures
// are logged and never affect the in-memory state or notifications.
type Persister interface {
	InsertProject(ctx context.Context, p models.Project) error
	UpdateProjectStatus(ctx context.Context, id string, status models.Status) error
}

// ProjectStore owns the project collection exclusively; components read it
// through snapshots and mutate it only through AddProject and MoveProject.
//
// The store is not safe for concurrent use. Mutation and notification run
// synchronously inside the UI update (or CLI command) that triggered them,
// so no listener can ever observe a partially applied mutation.
type ProjectStore struct {
	projects  []models.Project
	listeners []Listener
	persister Persister
}

// Option configures a ProjectStore at construction time.
type Option func(*ProjectStore)

// WithPersister attaches a write-through backend.
func WithPersister(p Persister) Option {
	return func(s *ProjectStore) {
		s.persister = p
	}
}

// WithProjects seeds the store with previously persisted projects.
// Seeding does not trigger notifications; listeners registered afterwards
// see the seeded projects on the first mutation.
func WithProjects(projects []models.Project) Option {
	return func(s *ProjectStore) {
		s.projects = append(s.projects, projects...)
	}
}

// New creates a ProjectStore. The application wires exactly one instance
// per process and hands it to every component that needs it.
func New(opts ...Option) *ProjectStore {
	s := &ProjectStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe appends the listener to the notification list. Listeners are
// invoked in subscription order. There is no deduplication and no
// unsubscribe; registration happens once at component construction.
func (s *ProjectStore) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// AddProject creates a project with a fresh random id and Active status,
// appends it to the sequence, and notifies all listeners. Id uniqueness is
// best-effort: the token is high-entropy and collisions are not checked.
func (s *ProjectStore) AddProject(title, description string, peopleCount int) models.Project {
	now := time.Now()
	project := models.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		PeopleCount: peopleCount,
		Status:      models.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects = append(s.projects, project)

	if s.persister != nil {
		if err := s.persister.InsertProject(context.Background(), project); err != nil {
			slog.Error("failed to persist new project", "id", project.ID, "error", err)
		}
	}

	s.notify()
	return project
}

// MoveProject sets the status of the project with the given id. An unknown
// id is a silent no-op, except that listeners are still notified: every
// move triggers a full re-render round, found or not.
func (s *ProjectStore) MoveProject(id string, newStatus models.Status) {
	for i := range s.projects {
		if s.projects[i].ID != id || s.projects[i].Status == newStatus {
			continue
		}
		s.projects[i].Status = newStatus
		s.projects[i].UpdatedAt = time.Now()

		if s.persister != nil {
			if err := s.persister.UpdateProjectStatus(context.Background(), id, newStatus); err != nil {
				slog.Error("failed to persist project move", "id", id, "status", newStatus, "error", err)
			}
		}
	}

	s.notify()
}

// Projects returns a snapshot copy of the project sequence in insertion
// order. Mutating the returned slice does not affect the store.
func (s *ProjectStore) Projects() []models.Project {
	return s.snapshot()
}

// notify invokes every listener in subscription order, each with its own
// snapshot copy.
func (s *ProjectStore) notify() {
	for _, fn := range s.listeners {
		fn(s.snapshot())
	}
}

func (s *ProjectStore) snapshot() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}
