package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksaito/pmdash/internal/domain"
)

// EditTaskInput contains the parameters for editing a task. The edit
// replaces the full set of mutable fields (never a partial patch), so
// every field must carry the intended final value.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	TaskID      string          // Task ID to edit (required)
	Title       string          // New title (required, trimmed)
	Description string          // New description
	ProjectID   string          // New owning project ID (required, must exist)
	Priority    domain.Priority // New priority
	Status      domain.Status   // New status
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks    domain.TaskRepository
	projects domain.ProjectRepository
	clock    domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, projects domain.ProjectRepository, clock domain.Clock) *EditTask {
	return &EditTask{
		tasks:    tasks,
		projects: projects,
		clock:    clock,
	}
}

// Execute replaces the task's mutable fields and refreshes UpdatedAt.
// ID and CreatedAt are immutable.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.ProjectID == "" {
		return nil, domain.ErrNoProject
	}
	if !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	task.Title = title
	task.Description = strings.TrimSpace(in.Description)
	task.ProjectID = in.ProjectID
	task.Priority = in.Priority
	task.Status = in.Status
	task.UpdatedAt = uc.clock.Now()

	if err := uc.tasks.SaveTask(*task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &EditTaskOutput{Task: *task}, nil
}
