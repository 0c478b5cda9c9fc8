package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// SelectProjectInput contains the parameters for selecting the active
// project filter.
type SelectProjectInput struct {
	ProjectID string // Project to select; selecting the active one clears it
}

// SelectProjectOutput contains the result of selecting a project.
type SelectProjectOutput struct {
	ActiveProject string // The new active project ID, "" if cleared
}

// SelectProject is the use case for toggling the active project filter.
type SelectProject struct {
	projects domain.ProjectRepository
	settings domain.SettingsRepository
}

// NewSelectProject creates a new SelectProject use case.
func NewSelectProject(projects domain.ProjectRepository, settings domain.SettingsRepository) *SelectProject {
	return &SelectProject{
		projects: projects,
		settings: settings,
	}
}

// Execute toggles the active project filter.
func (uc *SelectProject) Execute(_ context.Context, in SelectProjectInput) (*SelectProjectOutput, error) {
	project, err := uc.projects.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	active := uc.settings.SelectProject(in.ProjectID)
	return &SelectProjectOutput{ActiveProject: active}, nil
}
