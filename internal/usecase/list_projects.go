package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// ListProjectsInput contains the parameters for listing projects.
type ListProjectsInput struct {
	// Empty for now; reserved for future filters.
}

// ProjectRow is a project with its dependent-task count, as shown in
// the projects pane and used to pre-flight deletions.
type ProjectRow struct {
	Project   domain.Project
	TaskCount int
	Active    bool
}

// ListProjectsOutput contains the result of listing projects.
type ListProjectsOutput struct {
	Projects []ProjectRow // All projects in insertion order
}

// ListProjects is the use case for listing projects.
type ListProjects struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	settings domain.SettingsRepository
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(projects domain.ProjectRepository, tasks domain.TaskRepository, settings domain.SettingsRepository) *ListProjects {
	return &ListProjects{
		projects: projects,
		tasks:    tasks,
		settings: settings,
	}
}

// Execute lists all projects with task counts, preserving insertion
// order.
func (uc *ListProjects) Execute(_ context.Context, _ ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projects.ListProjects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	active := ""
	if uc.settings != nil {
		active = uc.settings.ActiveProject()
	}

	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		count, err := uc.tasks.CountTasksByProject(p.ID)
		if err != nil {
			return nil, fmt.Errorf("count tasks: %w", err)
		}
		rows = append(rows, ProjectRow{
			Project:   p,
			TaskCount: count,
			Active:    p.ID == active,
		})
	}

	return &ListProjectsOutput{Projects: rows}, nil
}
