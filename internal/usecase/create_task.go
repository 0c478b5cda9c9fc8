package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksaito/pmdash/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Title       string          // Task title (required, trimmed)
	Description string          // Description (optional)
	ProjectID   string          // Owning project ID (required, must exist)
	Priority    domain.Priority // Defaults to medium when empty
	Status      domain.Status   // Defaults to todo when empty
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task domain.Task // The created task
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	tasks    domain.TaskRepository
	projects domain.ProjectRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, projects domain.ProjectRepository, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		tasks:    tasks,
		projects: projects,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates a task with the given input.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.ProjectID == "" {
		return nil, domain.ErrNoProject
	}

	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	status := in.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	now := uc.clock.Now()
	task := domain.Task{
		ID:          domain.NewID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ProjectID:   in.ProjectID,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created: %q in %q", title, project.Name))
	}

	return &CreateTaskOutput{Task: task}, nil
}
