package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// ImportTasksInput contains the parameters for bulk-creating tasks
// from a markdown file.
type ImportTasksInput struct {
	Content string // File content (markdown with YAML frontmatter blocks)
	DryRun  bool   // Parse and validate without creating tasks
}

// ImportTasksOutput contains the tasks that were created (or would be
// created in dry-run mode).
type ImportTasksOutput struct {
	Tasks []domain.Task
}

// ImportTasks is the use case for creating tasks from a draft file.
// Each draft references its project by name; every referenced project
// must exist before any task is created.
type ImportTasks struct {
	tasks    domain.TaskRepository
	projects domain.ProjectRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, projects domain.ProjectRepository, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:    tasks,
		projects: projects,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates tasks from the given file content.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	// Resolve all project references up front so a bad draft in the
	// middle of the file cannot leave a partial import behind.
	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	byName := make(map[string]string, len(projects))
	for _, p := range projects {
		byName[p.Name] = p.ID
	}

	now := uc.clock.Now()
	tasks := make([]domain.Task, 0, len(drafts))
	for i, draft := range drafts {
		projectID, ok := byName[draft.Project]
		if !ok {
			return nil, fmt.Errorf("task %d: %w: %q", i+1, domain.ErrProjectNotFound, draft.Project)
		}
		tasks = append(tasks, domain.Task{
			ID:          domain.NewID(),
			Title:       draft.Title,
			Description: draft.Description,
			ProjectID:   projectID,
			Priority:    draft.Priority,
			Status:      draft.Status,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: tasks}, nil
	}

	for _, task := range tasks {
		if err := uc.tasks.SaveTask(task); err != nil {
			return nil, fmt.Errorf("save task %q: %w", task.Title, err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d task(s) from file", len(tasks)))
	}

	return &ImportTasksOutput{Tasks: tasks}, nil
}
