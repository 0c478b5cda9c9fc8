// Package memstore implements the entity repositories as an in-memory
// mirror of the persisted collections. It is the only mutator of
// persisted state: every mutation rewrites the full owning collection
// through the injected blob store. When a write fails the repository
// degrades to in-memory mode for the session instead of failing the
// user's intent.
package memstore

import (
	"fmt"
	"slices"

	"github.com/ksaito/pmdash/internal/domain"
)

// Repository holds both collections, the theme, and the active project
// filter for the lifetime of the process.
// Fields are ordered to minimize memory padding.
type Repository struct {
	blobs         domain.BlobStore
	logger        domain.Logger
	projects      []domain.Project
	tasks         []domain.Task
	activeProject string
	theme         domain.Theme
	degraded      bool
}

// New hydrates a repository from the blob store. Collections default
// to empty when nothing has been persisted yet.
func New(blobs domain.BlobStore, logger domain.Logger) (*Repository, error) {
	projects, err := blobs.LoadProjects()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	tasks, err := blobs.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	theme, err := blobs.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	return &Repository{
		blobs:    blobs,
		logger:   logger,
		projects: projects,
		tasks:    tasks,
		theme:    theme,
	}, nil
}

// Degraded reports whether a persistence write has failed this
// session. Mutations made while degraded are visible in memory only.
func (r *Repository) Degraded() bool {
	return r.degraded
}

// === ProjectRepository ===

// GetProject retrieves a project by ID. Returns nil if not found.
func (r *Repository) GetProject(id string) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListProjects returns a copy of all projects in insertion order.
func (r *Repository) ListProjects() ([]domain.Project, error) {
	return slices.Clone(r.projects), nil
}

// SaveProject creates or replaces a project, then persists the full
// projects collection.
func (r *Repository) SaveProject(p domain.Project) error {
	idx := slices.IndexFunc(r.projects, func(e domain.Project) bool { return e.ID == p.ID })
	if idx >= 0 {
		r.projects[idx] = p
	} else {
		r.projects = append(r.projects, p)
	}
	r.persist(r.blobs.SaveProjects(r.projects))
	return nil
}

// DeleteProject removes a project by ID and persists. Missing IDs are
// a no-op. Referential checks belong to the use case layer.
func (r *Repository) DeleteProject(id string) error {
	before := len(r.projects)
	r.projects = slices.DeleteFunc(r.projects, func(e domain.Project) bool { return e.ID == id })
	if len(r.projects) == before {
		return nil
	}
	if r.activeProject == id {
		r.activeProject = ""
	}
	r.persist(r.blobs.SaveProjects(r.projects))
	return nil
}

// === TaskRepository ===

// GetTask retrieves a task by ID. Returns nil if not found.
func (r *Repository) GetTask(id string) (*domain.Task, error) {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			t := r.tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

// ListTasks returns a copy of all tasks in insertion order.
func (r *Repository) ListTasks() ([]domain.Task, error) {
	return slices.Clone(r.tasks), nil
}

// SaveTask creates or replaces a task, then persists the full tasks
// collection.
func (r *Repository) SaveTask(t domain.Task) error {
	idx := slices.IndexFunc(r.tasks, func(e domain.Task) bool { return e.ID == t.ID })
	if idx >= 0 {
		r.tasks[idx] = t
	} else {
		r.tasks = append(r.tasks, t)
	}
	r.persist(r.blobs.SaveTasks(r.tasks))
	return nil
}

// DeleteTask removes a task by ID and persists. Missing IDs are a
// no-op.
func (r *Repository) DeleteTask(id string) error {
	before := len(r.tasks)
	r.tasks = slices.DeleteFunc(r.tasks, func(e domain.Task) bool { return e.ID == id })
	if len(r.tasks) == before {
		return nil
	}
	r.persist(r.blobs.SaveTasks(r.tasks))
	return nil
}

// CountTasksByProject returns the number of tasks referencing the
// given project.
func (r *Repository) CountTasksByProject(projectID string) (int, error) {
	n := 0
	for i := range r.tasks {
		if r.tasks[i].ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

// ReplaceAll swaps in a complete new tasks collection and persists.
// Used by data import.
func (r *Repository) ReplaceAll(tasks []domain.Task) error {
	r.tasks = slices.Clone(tasks)
	r.persist(r.blobs.SaveTasks(r.tasks))
	return nil
}

// ReplaceAllProjects swaps in a complete new projects collection and
// persists. Used by data import.
func (r *Repository) ReplaceAllProjects(projects []domain.Project) error {
	r.projects = slices.Clone(projects)
	r.activeProject = ""
	r.persist(r.blobs.SaveProjects(r.projects))
	return nil
}

// === SettingsRepository ===

// Theme returns the current theme.
func (r *Repository) Theme() domain.Theme {
	return r.theme
}

// SetTheme updates and persists the theme.
func (r *Repository) SetTheme(theme domain.Theme) error {
	r.theme = theme
	r.persist(r.blobs.SaveTheme(theme))
	return nil
}

// ActiveProject returns the active project filter, or "" if none.
func (r *Repository) ActiveProject() string {
	return r.activeProject
}

// SelectProject toggles the active project filter: selecting the
// currently active ID clears it. Returns the new active ID.
func (r *Repository) SelectProject(id string) string {
	if r.activeProject == id {
		r.activeProject = ""
	} else {
		r.activeProject = id
	}
	return r.activeProject
}

// === Snapshotter ===

// Snapshot returns copies of both collections in insertion order.
func (r *Repository) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Projects: slices.Clone(r.projects),
		Tasks:    slices.Clone(r.tasks),
	}
}

// persist records the outcome of a blob write. A failure flips the
// repository into degraded mode; the in-memory state stays authoritative
// for the rest of the session.
func (r *Repository) persist(err error) {
	if err == nil {
		return
	}
	if r.logger != nil {
		r.logger.Warn("store", fmt.Sprintf("persist failed, continuing in memory: %v", err))
	}
	r.degraded = true
}

// Interface conformance.
var (
	_ domain.ProjectRepository  = (*Repository)(nil)
	_ domain.TaskRepository     = (*Repository)(nil)
	_ domain.SettingsRepository = (*Repository)(nil)
	_ domain.Snapshotter        = (*Repository)(nil)
)
