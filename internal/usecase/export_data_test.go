package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportData_Execute(t *testing.T) {
	// Setup
	snap := newSnapshotFixtures()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)}
	uc := NewExportData(snap, clock, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), ExportDataInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pmdash-export-2026-08-31.json", out.FileName)
	assert.Len(t, out.Document.Projects, 2)
	assert.Len(t, out.Document.Tasks, 3)
	assert.Equal(t, clock.NowTime, out.Document.ExportDate)

	// Content is the indented serialization of the document.
	var decoded domain.ExportDocument
	require.NoError(t, json.Unmarshal(out.Content, &decoded))
	assert.Equal(t, out.Document.Projects, decoded.Projects)
	assert.Equal(t, out.Document.Tasks, decoded.Tasks)
}

func TestExportImport_RoundTrip(t *testing.T) {
	// Export from one repository, import into another, and compare.
	snap := newSnapshotFixtures()
	clock := &testutil.MockClock{NowTime: time.Now()}
	export := NewExportData(snap, clock, testutil.NopLogger{})

	out, err := export.Execute(context.Background(), ExportDataInput{})
	require.NoError(t, err)

	destProjects := testutil.NewMockProjectRepository()
	destTasks := testutil.NewMockTaskRepository()
	importUC := NewImportData(destProjects, destTasks, testutil.NopLogger{})

	result, err := importUC.Execute(context.Background(), ImportDataInput{Content: out.Content})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Projects)
	assert.Equal(t, 3, result.Tasks)

	assert.Equal(t, snap.ProjectRepo.Projects, destProjects.Projects)
	assert.Equal(t, snap.TaskRepo.Tasks, destTasks.Tasks)
}

func TestImportData_Execute_InvalidJSON(t *testing.T) {
	uc := NewImportData(testutil.NewMockProjectRepository(), testutil.NewMockTaskRepository(), testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportDataInput{Content: []byte("{broken")})
	assert.Error(t, err)
}

func TestImportData_Execute_InvalidDocument(t *testing.T) {
	// A task referencing a project absent from the document is
	// rejected before anything is replaced.
	projects := testutil.NewMockProjectRepository()
	projects.Projects = []domain.Project{{ID: "keep", Name: "Keep me"}}
	tasks := testutil.NewMockTaskRepository()
	uc := NewImportData(projects, tasks, testutil.NopLogger{})

	doc := domain.ExportDocument{
		Tasks: []domain.Task{{ID: "t1", Title: "Orphan", ProjectID: "ghost"}},
	}
	content, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ImportDataInput{Content: content})
	require.Error(t, err)

	// Existing data survives a rejected import.
	assert.Len(t, projects.Projects, 1)
	assert.Equal(t, "Keep me", projects.Projects[0].Name)
}

func TestImportData_Execute_ReplacesExisting(t *testing.T) {
	projects := testutil.NewMockProjectRepository()
	projects.Projects = []domain.Project{{ID: "old", Name: "Old"}}
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks = []domain.Task{{ID: "old-t", Title: "Old task", ProjectID: "old"}}
	uc := NewImportData(projects, tasks, testutil.NopLogger{})

	doc := domain.ExportDocument{
		Projects: []domain.Project{{ID: "new", Name: "New"}},
	}
	content, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ImportDataInput{Content: content})
	require.NoError(t, err)

	// Import replaces, it does not merge.
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, "new", projects.Projects[0].ID)
	assert.Empty(t, tasks.Tasks)
}
