// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the mock clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// NopLogger is a test double for domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// MockProjectRepository is a test double for domain.ProjectRepository.
type MockProjectRepository struct {
	Projects []domain.Project
	SaveErr  error
	GetErr   error
}

// NewMockProjectRepository creates an empty MockProjectRepository.
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

// GetProject retrieves a project by ID, nil when absent.
func (m *MockProjectRepository) GetProject(id string) (*domain.Project, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Projects {
		if m.Projects[i].ID == id {
			p := m.Projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListProjects returns all projects in insertion order.
func (m *MockProjectRepository) ListProjects() ([]domain.Project, error) {
	return slices.Clone(m.Projects), nil
}

// SaveProject upserts a project.
func (m *MockProjectRepository) SaveProject(p domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if i := slices.IndexFunc(m.Projects, func(e domain.Project) bool { return e.ID == p.ID }); i >= 0 {
		m.Projects[i] = p
		return nil
	}
	m.Projects = append(m.Projects, p)
	return nil
}

// DeleteProject removes a project; no-op when absent.
func (m *MockProjectRepository) DeleteProject(id string) error {
	m.Projects = slices.DeleteFunc(m.Projects, func(e domain.Project) bool { return e.ID == id })
	return nil
}

// ReplaceAllProjects swaps in a whole new collection.
func (m *MockProjectRepository) ReplaceAllProjects(projects []domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Projects = slices.Clone(projects)
	return nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks   []domain.Task
	SaveErr error
	GetErr  error
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// GetTask retrieves a task by ID, nil when absent.
func (m *MockTaskRepository) GetTask(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			t := m.Tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

// ListTasks returns all tasks in insertion order.
func (m *MockTaskRepository) ListTasks() ([]domain.Task, error) {
	return slices.Clone(m.Tasks), nil
}

// SaveTask upserts a task.
func (m *MockTaskRepository) SaveTask(t domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if i := slices.IndexFunc(m.Tasks, func(e domain.Task) bool { return e.ID == t.ID }); i >= 0 {
		m.Tasks[i] = t
		return nil
	}
	m.Tasks = append(m.Tasks, t)
	return nil
}

// DeleteTask removes a task; no-op when absent.
func (m *MockTaskRepository) DeleteTask(id string) error {
	m.Tasks = slices.DeleteFunc(m.Tasks, func(e domain.Task) bool { return e.ID == id })
	return nil
}

// CountTasksByProject counts tasks referencing the given project.
func (m *MockTaskRepository) CountTasksByProject(projectID string) (int, error) {
	count := 0
	for i := range m.Tasks {
		if m.Tasks[i].ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

// ReplaceAll swaps in a whole new collection.
func (m *MockTaskRepository) ReplaceAll(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = slices.Clone(tasks)
	return nil
}

// MockSettingsRepository is a test double for domain.SettingsRepository.
type MockSettingsRepository struct {
	CurrentTheme domain.Theme
	Active       string
	SetThemeErr  error
}

// NewMockSettingsRepository creates a MockSettingsRepository with the
// default theme.
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{CurrentTheme: domain.DefaultTheme}
}

// Theme returns the current theme.
func (m *MockSettingsRepository) Theme() domain.Theme {
	return m.CurrentTheme
}

// SetTheme stores the theme.
func (m *MockSettingsRepository) SetTheme(theme domain.Theme) error {
	if m.SetThemeErr != nil {
		return m.SetThemeErr
	}
	m.CurrentTheme = theme
	return nil
}

// ActiveProject returns the active project ID.
func (m *MockSettingsRepository) ActiveProject() string {
	return m.Active
}

// SelectProject toggles the active project and returns the new value.
func (m *MockSettingsRepository) SelectProject(id string) string {
	if m.Active == id {
		m.Active = ""
	} else {
		m.Active = id
	}
	return m.Active
}

// MockSnapshotter is a test double for domain.Snapshotter backed by the
// project and task mocks.
type MockSnapshotter struct {
	ProjectRepo *MockProjectRepository
	TaskRepo    *MockTaskRepository
}

// Snapshot returns copies of both collections.
func (m *MockSnapshotter) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Projects: slices.Clone(m.ProjectRepo.Projects),
		Tasks:    slices.Clone(m.TaskRepo.Tasks),
	}
}
