// Package usecase contains application use cases. Each file holds one
// user intent with explicit Input/Output structs; failures are
// terminal for that single intent and never mutate state.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksaito/pmdash/internal/domain"
)

// CreateProjectInput contains the parameters for creating a project.
type CreateProjectInput struct {
	Name string // Project name (required, trimmed)
}

// CreateProjectOutput contains the result of creating a project.
type CreateProjectOutput struct {
	Project domain.Project // The created project
}

// CreateProject is the use case for creating a new project.
type CreateProject struct {
	projects domain.ProjectRepository
	clock    domain.Clock
	logger   domain.Logger
}

// NewCreateProject creates a new CreateProject use case.
func NewCreateProject(projects domain.ProjectRepository, clock domain.Clock, logger domain.Logger) *CreateProject {
	return &CreateProject{
		projects: projects,
		clock:    clock,
		logger:   logger,
	}
}

// Execute creates a project with the given input.
func (uc *CreateProject) Execute(_ context.Context, in CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	project := domain.NewProject(name, uc.clock.Now())

	if err := uc.projects.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("created: %q", name))
	}

	return &CreateProjectOutput{Project: project}, nil
}
