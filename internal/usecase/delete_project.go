package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// DeleteProjectInput contains the parameters for deleting a project.
type DeleteProjectInput struct {
	ProjectID string // Project ID to delete
}

// DeleteProjectOutput contains the result of deleting a project.
type DeleteProjectOutput struct {
	Project domain.Project // The deleted project
}

// DeleteProject is the use case for deleting a project.
type DeleteProject struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	logger   domain.Logger
}

// NewDeleteProject creates a new DeleteProject use case.
func NewDeleteProject(projects domain.ProjectRepository, tasks domain.TaskRepository, logger domain.Logger) *DeleteProject {
	return &DeleteProject{
		projects: projects,
		tasks:    tasks,
		logger:   logger,
	}
}

// Execute deletes a project. Deletion is rejected with a
// DependencyError while any task still references the project; there
// is no cascade delete, the tasks must be deleted or reassigned first.
func (uc *DeleteProject) Execute(_ context.Context, in DeleteProjectInput) (*DeleteProjectOutput, error) {
	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	count, err := uc.tasks.CountTasksByProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if count > 0 {
		return nil, &domain.DependencyError{ProjectName: project.Name, Count: count}
	}

	if err := uc.projects.DeleteProject(in.ProjectID); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("deleted: %q", project.Name))
	}

	return &DeleteProjectOutput{Project: *project}, nil
}
