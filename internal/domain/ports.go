package domain

import "time"

// BlobStore persists whole-collection snapshots to durable storage.
// Each logical key is written in full on every save; there are no
// partial writes and no transactions.
type BlobStore interface {
	// LoadProjects returns the persisted projects collection, or an
	// empty collection if nothing has been persisted yet.
	LoadProjects() ([]Project, error)

	// SaveProjects overwrites the persisted projects collection.
	SaveProjects(projects []Project) error

	// LoadTasks returns the persisted tasks collection, or an empty
	// collection if nothing has been persisted yet.
	LoadTasks() ([]Task, error)

	// SaveTasks overwrites the persisted tasks collection.
	SaveTasks(tasks []Task) error

	// LoadTheme returns the persisted theme, or DefaultTheme.
	LoadTheme() (Theme, error)

	// SaveTheme overwrites the persisted theme.
	SaveTheme(theme Theme) error
}

// ProjectRepository manages the projects collection.
type ProjectRepository interface {
	// GetProject retrieves a project by ID. Returns nil if not found.
	GetProject(id string) (*Project, error)

	// ListProjects returns all projects in insertion order.
	ListProjects() ([]Project, error)

	// SaveProject creates or replaces a project and persists the
	// full collection.
	SaveProject(p Project) error

	// DeleteProject removes a project by ID and persists. Removing a
	// missing ID is a no-op.
	DeleteProject(id string) error

	// ReplaceAllProjects swaps in a complete new projects collection
	// and persists.
	ReplaceAllProjects(projects []Project) error
}

// TaskRepository manages the tasks collection.
type TaskRepository interface {
	// GetTask retrieves a task by ID. Returns nil if not found.
	GetTask(id string) (*Task, error)

	// ListTasks returns all tasks in insertion order.
	ListTasks() ([]Task, error)

	// SaveTask creates or replaces a task and persists the full
	// collection.
	SaveTask(t Task) error

	// DeleteTask removes a task by ID and persists. Removing a
	// missing ID is a no-op.
	DeleteTask(id string) error

	// CountTasksByProject returns the number of tasks referencing the
	// given project.
	CountTasksByProject(projectID string) (int, error)

	// ReplaceAll swaps in a complete new tasks collection and persists.
	ReplaceAll(tasks []Task) error
}

// SettingsRepository manages session-scoped settings.
type SettingsRepository interface {
	// Theme returns the current theme.
	Theme() Theme

	// SetTheme updates and persists the theme.
	SetTheme(theme Theme) error

	// ActiveProject returns the active project filter, or "" if none.
	ActiveProject() string

	// SelectProject toggles the active project filter: selecting the
	// currently active ID clears it. Returns the new active ID.
	SelectProject(id string) string
}

// Snapshot is a point-in-time copy of both collections, consumed by
// the derived views.
type Snapshot struct {
	Projects []Project
	Tasks    []Task
}

// Snapshotter produces snapshots of the current repository state.
type Snapshotter interface {
	// Snapshot returns copies of both collections in insertion order.
	Snapshot() Snapshot
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger records diagnostic messages. Implementations must never fail
// the calling operation.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
