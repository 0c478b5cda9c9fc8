package usecase

import (
	"context"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/views"
)

// ListTasksInput contains the filter parameters for listing tasks.
// Zero values (or "all") pass everything for their field.
type ListTasksInput struct {
	Status      string // Status filter
	Project     string // Project ID filter
	Search      string // Case-insensitive title/description search
	TableSearch string // Table-mode search across title/project/status/priority
	Table       bool   // Use table-mode matching instead of the list filter
}

// TaskRow is a task joined with its owning project's name for display.
type TaskRow struct {
	Task        domain.Task
	ProjectName string
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []TaskRow // Matching tasks in insertion order
}

// ListTasks is the use case for listing tasks through the derived-view
// filters.
type ListTasks struct {
	snapshots domain.Snapshotter
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(snapshots domain.Snapshotter) *ListTasks {
	return &ListTasks{
		snapshots: snapshots,
	}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	snapshot := uc.snapshots.Snapshot()

	var tasks []domain.Task
	if in.Table {
		tasks = views.FilterTable(snapshot, in.TableSearch)
	} else {
		tasks = views.FilterTasks(snapshot, views.TaskFilter{
			Status:  in.Status,
			Project: in.Project,
			Search:  in.Search,
		})
	}

	names := make(map[string]string, len(snapshot.Projects))
	for _, p := range snapshot.Projects {
		names[p.ID] = p.Name
	}

	rows := make([]TaskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, TaskRow{Task: t, ProjectName: names[t.ProjectID]})
	}

	return &ListTasksOutput{Tasks: rows}, nil
}
