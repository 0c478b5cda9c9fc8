package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftFile = `---
title: Design homepage
project: Alpha
priority: high
---
Hero section first.

---
title: Write copy
project: Alpha
---
`

func TestImportTasks_Execute_Success(t *testing.T) {
	// Setup
	tasks, projects, clock := newTaskFixtures()
	projects.Projects[0].Name = "Alpha"
	uc := NewImportTasks(tasks, projects, clock, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: draftFile})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Design homepage", out.Tasks[0].Title)
	assert.Equal(t, "Hero section first.", out.Tasks[0].Description)
	assert.Equal(t, domain.PriorityHigh, out.Tasks[0].Priority)
	assert.Equal(t, "p1", out.Tasks[0].ProjectID, "project resolved by name")
	assert.Equal(t, domain.PriorityMedium, out.Tasks[1].Priority, "defaults applied")

	assert.Len(t, tasks.Tasks, 2)
	for _, task := range tasks.Tasks {
		assert.Equal(t, clock.NowTime, task.CreatedAt)
	}
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	tasks, projects, clock := newTaskFixtures()
	projects.Projects[0].Name = "Alpha"
	uc := NewImportTasks(tasks, projects, clock, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: draftFile, DryRun: true})

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2, "drafts are returned")
	assert.Empty(t, tasks.Tasks, "nothing is saved in dry-run mode")
}

func TestImportTasks_Execute_UnknownProject(t *testing.T) {
	// One bad reference in the middle of the file rejects the whole
	// import; no partial state is left behind.
	tasks, projects, clock := newTaskFixtures()
	projects.Projects[0].Name = "Alpha"
	uc := NewImportTasks(tasks, projects, clock, testutil.NopLogger{})

	content := draftFile + `
---
title: Orphan
project: Nonexistent
---
`

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Empty(t, tasks.Tasks)
}

func TestImportTasks_Execute_EmptyFile(t *testing.T) {
	tasks, projects, _ := newTaskFixtures()
	uc := NewImportTasks(tasks, projects, &testutil.MockClock{NowTime: time.Now()}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}
