package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditTask_Execute_Success(t *testing.T) {
	// Setup
	created := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	tasks, projects, clock := newTaskFixtures()
	projects.Projects = append(projects.Projects, domain.Project{ID: "p2", Name: "Beta"})
	tasks.Tasks = []domain.Task{{
		ID:        "t1",
		Title:     "Old title",
		ProjectID: "p1",
		Priority:  domain.PriorityLow,
		Status:    domain.StatusTodo,
		CreatedAt: created,
		UpdatedAt: created,
	}}
	uc := NewEditTask(tasks, projects, clock)

	// Execute
	out, err := uc.Execute(context.Background(), EditTaskInput{
		TaskID:      "t1",
		Title:       "New title",
		Description: "now with details",
		ProjectID:   "p2",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusInProgress,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "t1", out.Task.ID, "ID is immutable")
	assert.Equal(t, created, out.Task.CreatedAt, "CreatedAt is immutable")
	assert.Equal(t, "New title", out.Task.Title)
	assert.Equal(t, "p2", out.Task.ProjectID, "reassigned to the other project")
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)
	assert.Equal(t, clock.NowTime, out.Task.UpdatedAt)
}

func TestEditTask_Execute_UpdatedAtAdvances(t *testing.T) {
	tasks, projects, clock := newTaskFixtures()
	tasks.Tasks = []domain.Task{{ID: "t1", Title: "A", ProjectID: "p1", Priority: domain.PriorityLow, Status: domain.StatusTodo, UpdatedAt: clock.NowTime}}
	uc := NewEditTask(tasks, projects, clock)

	first := clock.NowTime
	clock.Advance(time.Hour)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		TaskID: "t1", Title: "A", ProjectID: "p1",
		Priority: domain.PriorityLow, Status: domain.StatusTodo,
	})
	require.NoError(t, err)
	assert.True(t, out.Task.UpdatedAt.After(first))
}

func TestEditTask_Execute_Errors(t *testing.T) {
	tasks, projects, clock := newTaskFixtures()
	tasks.Tasks = []domain.Task{{ID: "t1", Title: "A", ProjectID: "p1"}}
	uc := NewEditTask(tasks, projects, clock)

	tests := []struct {
		name    string
		input   EditTaskInput
		wantErr error
	}{
		{"task not found", EditTaskInput{TaskID: "t9", Title: "X", ProjectID: "p1", Priority: domain.PriorityLow, Status: domain.StatusTodo}, domain.ErrTaskNotFound},
		{"empty title", EditTaskInput{TaskID: "t1", Title: " ", ProjectID: "p1", Priority: domain.PriorityLow, Status: domain.StatusTodo}, domain.ErrEmptyTitle},
		{"no project", EditTaskInput{TaskID: "t1", Title: "X", Priority: domain.PriorityLow, Status: domain.StatusTodo}, domain.ErrNoProject},
		{"unknown project", EditTaskInput{TaskID: "t1", Title: "X", ProjectID: "p9", Priority: domain.PriorityLow, Status: domain.StatusTodo}, domain.ErrProjectNotFound},
		{"invalid priority", EditTaskInput{TaskID: "t1", Title: "X", ProjectID: "p1", Priority: "urgent", Status: domain.StatusTodo}, domain.ErrInvalidPriority},
		{"invalid status", EditTaskInput{TaskID: "t1", Title: "X", ProjectID: "p1", Priority: domain.PriorityLow, Status: "done"}, domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// The stored task is unchanged after every rejection.
	assert.Equal(t, "A", tasks.Tasks[0].Title)
}
