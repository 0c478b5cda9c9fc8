package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksaito/pmdash/internal/domain"
)

// EditProjectInput contains the parameters for renaming a project.
type EditProjectInput struct {
	ProjectID string // Project ID to edit (required)
	Name      string // New name (required, trimmed)
}

// EditProjectOutput contains the result of editing a project.
type EditProjectOutput struct {
	Project domain.Project // The updated project
}

// EditProject is the use case for renaming an existing project.
type EditProject struct {
	projects domain.ProjectRepository
}

// NewEditProject creates a new EditProject use case.
func NewEditProject(projects domain.ProjectRepository) *EditProject {
	return &EditProject{
		projects: projects,
	}
}

// Execute renames a project. Name is the only mutable project field;
// ID and creation time never change.
func (uc *EditProject) Execute(_ context.Context, in EditProjectInput) (*EditProjectOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	project.Name = name

	if err := uc.projects.SaveProject(*project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	return &EditProjectOutput{Project: *project}, nil
}
