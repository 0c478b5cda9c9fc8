package memstore

import (
	"errors"
	"testing"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/infra/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBlobStore accepts loads but rejects every save.
type failingBlobStore struct {
	saveErr error
}

func (f *failingBlobStore) LoadProjects() ([]domain.Project, error) { return nil, nil }
func (f *failingBlobStore) SaveProjects([]domain.Project) error     { return f.saveErr }
func (f *failingBlobStore) LoadTasks() ([]domain.Task, error)       { return nil, nil }
func (f *failingBlobStore) SaveTasks([]domain.Task) error           { return f.saveErr }
func (f *failingBlobStore) LoadTheme() (domain.Theme, error)        { return domain.DefaultTheme, nil }
func (f *failingBlobStore) SaveTheme(domain.Theme) error            { return f.saveErr }

func newTestRepo(t *testing.T) (*Repository, *jsonstore.Store) {
	t.Helper()
	blobs := jsonstore.New(t.TempDir(), nil)
	repo, err := New(blobs, nil)
	require.NoError(t, err)
	return repo, blobs
}

func TestRepository_Hydrate(t *testing.T) {
	dir := t.TempDir()
	blobs := jsonstore.New(dir, nil)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	require.NoError(t, blobs.SaveProjects([]domain.Project{{ID: "p1", Name: "Alpha", CreatedAt: now}}))
	require.NoError(t, blobs.SaveTasks([]domain.Task{{ID: "t1", Title: "A", ProjectID: "p1", CreatedAt: now, UpdatedAt: now}}))
	require.NoError(t, blobs.SaveTheme(domain.ThemeDark))

	repo, err := New(blobs, nil)
	require.NoError(t, err)

	projects, err := repo.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)

	tasks, err := repo.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, domain.ThemeDark, repo.Theme())
	assert.False(t, repo.Degraded())
}

func TestRepository_SaveProject_PersistsFullCollection(t *testing.T) {
	repo, blobs := newTestRepo(t)

	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha"}))
	require.NoError(t, repo.SaveProject(domain.Project{ID: "p2", Name: "Beta"}))

	// The persisted collection mirrors memory after every mutation.
	persisted, err := blobs.LoadProjects()
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.Equal(t, "Alpha", persisted[0].Name)
	assert.Equal(t, "Beta", persisted[1].Name)
}

func TestRepository_SaveProject_Upsert(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha"}))
	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha v2"}))

	projects, err := repo.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha v2", projects[0].Name)
}

func TestRepository_DeleteProject(t *testing.T) {
	repo, blobs := newTestRepo(t)
	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha"}))

	repo.SelectProject("p1")
	require.NoError(t, repo.DeleteProject("p1"))

	p, err := repo.GetProject("p1")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, repo.ActiveProject(), "active filter cleared with the project")

	persisted, err := blobs.LoadProjects()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	// Deleting again is a no-op.
	require.NoError(t, repo.DeleteProject("p1"))
}

func TestRepository_TaskLifecycle(t *testing.T) {
	repo, blobs := newTestRepo(t)

	task := domain.Task{ID: "t1", Title: "Write docs", ProjectID: "p1", Status: domain.StatusTodo, Priority: domain.PriorityMedium}
	require.NoError(t, repo.SaveTask(task))

	got, err := repo.GetTask("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Write docs", got.Title)

	task.Status = domain.StatusCompleted
	require.NoError(t, repo.SaveTask(task))

	persisted, err := blobs.LoadTasks()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, domain.StatusCompleted, persisted[0].Status)

	require.NoError(t, repo.DeleteTask("t1"))
	got, err = repo.GetTask("t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_CountTasksByProject(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.SaveTask(domain.Task{ID: "t1", ProjectID: "p1"}))
	require.NoError(t, repo.SaveTask(domain.Task{ID: "t2", ProjectID: "p1"}))
	require.NoError(t, repo.SaveTask(domain.Task{ID: "t3", ProjectID: "p2"}))

	n, err := repo.CountTasksByProject("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountTasksByProject("p9")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepository_ReplaceAll(t *testing.T) {
	repo, blobs := newTestRepo(t)
	require.NoError(t, repo.SaveProject(domain.Project{ID: "old", Name: "Old"}))
	require.NoError(t, repo.SaveTask(domain.Task{ID: "old-t", ProjectID: "old"}))
	repo.SelectProject("old")

	require.NoError(t, repo.ReplaceAllProjects([]domain.Project{{ID: "new", Name: "New"}}))
	require.NoError(t, repo.ReplaceAll([]domain.Task{{ID: "new-t", ProjectID: "new"}}))

	assert.Empty(t, repo.ActiveProject(), "import resets the active filter")

	persisted, err := blobs.LoadProjects()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "new", persisted[0].ID)

	tasks, err := repo.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "new-t", tasks[0].ID)
}

func TestRepository_SelectProject_Toggles(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.Equal(t, "p1", repo.SelectProject("p1"))
	assert.Equal(t, "p2", repo.SelectProject("p2"), "selecting another replaces")
	assert.Empty(t, repo.SelectProject("p2"), "selecting the active one clears")
}

func TestRepository_SetTheme(t *testing.T) {
	repo, blobs := newTestRepo(t)

	require.NoError(t, repo.SetTheme(domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, repo.Theme())

	persisted, err := blobs.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, persisted)
}

func TestRepository_DegradedMode(t *testing.T) {
	blobs := &failingBlobStore{saveErr: errors.New("disk full")}
	repo, err := New(blobs, nil)
	require.NoError(t, err)

	// The mutation succeeds in memory even though persistence failed.
	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha"}))
	assert.True(t, repo.Degraded())

	projects, err := repo.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)

	// Further mutations keep working in memory.
	require.NoError(t, repo.SaveTask(domain.Task{ID: "t1", ProjectID: "p1"}))
	tasks, err := repo.ListTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestRepository_Snapshot_IsACopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.SaveProject(domain.Project{ID: "p1", Name: "Alpha"}))

	snap := repo.Snapshot()
	snap.Projects[0].Name = "mutated"

	projects, err := repo.ListProjects()
	require.NoError(t, err)
	assert.Equal(t, "Alpha", projects[0].Name, "snapshot mutations must not leak back")
}
