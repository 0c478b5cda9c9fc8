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

func TestDashboard_Execute(t *testing.T) {
	// Setup
	now := time.Now()
	projects := testutil.NewMockProjectRepository()
	projects.Projects = []domain.Project{
		{ID: "p1", Name: "Website"},
		{ID: "p2", Name: "Mobile"},
	}
	tasks := testutil.NewMockTaskRepository()
	tasks.Tasks = []domain.Task{
		{ID: "t1", ProjectID: "p1", Status: domain.StatusTodo, UpdatedAt: now},
		{ID: "t2", ProjectID: "p1", Status: domain.StatusTodo, UpdatedAt: now},
		{ID: "t3", ProjectID: "p1", Status: domain.StatusInProgress, UpdatedAt: now},
		{ID: "t4", ProjectID: "p2", Status: domain.StatusCompleted, UpdatedAt: now},
		{ID: "t5", ProjectID: "p2", Status: domain.StatusCompleted, UpdatedAt: now.AddDate(0, 0, -2)},
	}
	snap := &testutil.MockSnapshotter{ProjectRepo: projects, TaskRepo: tasks}
	uc := NewDashboard(snap, &testutil.MockClock{NowTime: now})

	// Execute
	out, err := uc.Execute(context.Background(), DashboardInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Stats.TotalProjects)
	assert.Equal(t, 5, out.Stats.TotalTasks)
	assert.Equal(t, 2, out.Stats.Completed)
	assert.Equal(t, 3, out.Stats.Pending)

	require.Len(t, out.StatusBreakdown, 3)
	assert.Equal(t, 2, out.StatusBreakdown[0].Count, "todo")
	assert.Equal(t, 1, out.StatusBreakdown[1].Count, "inprogress")
	assert.Equal(t, 2, out.StatusBreakdown[2].Count, "completed")

	require.Len(t, out.TasksPerProject, 2)
	assert.Equal(t, 3, out.TasksPerProject[0].Count)
	assert.Equal(t, 2, out.TasksPerProject[1].Count)

	require.Len(t, out.CompletionTrend, 7)
	assert.Equal(t, 1, out.CompletionTrend[6].Count, "completed today")

	assert.Equal(t, 40, out.CompletionPercentage)
	assert.Equal(t, 40, out.ProductivityRate)
	assert.Equal(t, 1, out.TasksCompletedToday)
	assert.Equal(t, 2, out.WeeklyProgress, "both completions inside the trend window")
}

func TestDashboard_Execute_Empty(t *testing.T) {
	snap := &testutil.MockSnapshotter{
		ProjectRepo: testutil.NewMockProjectRepository(),
		TaskRepo:    testutil.NewMockTaskRepository(),
	}
	uc := NewDashboard(snap, &testutil.MockClock{NowTime: time.Now()})

	out, err := uc.Execute(context.Background(), DashboardInput{})
	require.NoError(t, err)

	assert.Zero(t, out.Stats.TotalTasks)
	assert.Zero(t, out.CompletionPercentage, "no tasks means 0%, not a division error")
	assert.Zero(t, out.ProductivityRate)
	require.Len(t, out.StatusBreakdown, 3, "series stays zero-filled")
	assert.Empty(t, out.TasksPerProject)
	require.Len(t, out.CompletionTrend, 7)
}
