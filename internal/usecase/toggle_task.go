package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's status.
type ToggleTaskInput struct {
	TaskID string // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task domain.Task // The updated task
}

// ToggleTask is the use case for flipping a task between completed and
// todo. An in-progress task toggles directly to completed.
type ToggleTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute toggles the task's status and refreshes UpdatedAt.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	task.Status = task.Status.Toggle()
	task.UpdatedAt = uc.clock.Now()

	if err := uc.tasks.SaveTask(*task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("toggled %q to %s", task.Title, task.Status))
	}

	return &ToggleTaskOutput{Task: *task}, nil
}
