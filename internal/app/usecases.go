package app

import "github.com/ksaito/pmdash/internal/usecase"

// Use case factory methods. Each returns a freshly wired use case
// bound to the container's ports.

// CreateProjectUseCase returns a wired CreateProject use case.
func (c *Container) CreateProjectUseCase() *usecase.CreateProject {
	return usecase.NewCreateProject(c.Projects, c.Clock, c.Logger)
}

// EditProjectUseCase returns a wired EditProject use case.
func (c *Container) EditProjectUseCase() *usecase.EditProject {
	return usecase.NewEditProject(c.Projects)
}

// DeleteProjectUseCase returns a wired DeleteProject use case.
func (c *Container) DeleteProjectUseCase() *usecase.DeleteProject {
	return usecase.NewDeleteProject(c.Projects, c.Tasks, c.Logger)
}

// SelectProjectUseCase returns a wired SelectProject use case.
func (c *Container) SelectProjectUseCase() *usecase.SelectProject {
	return usecase.NewSelectProject(c.Projects, c.Settings)
}

// ListProjectsUseCase returns a wired ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.Projects, c.Tasks, c.Settings)
}

// CreateTaskUseCase returns a wired CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Tasks, c.Projects, c.Clock, c.Logger)
}

// EditTaskUseCase returns a wired EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Projects, c.Clock)
}

// DeleteTaskUseCase returns a wired DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ToggleTaskUseCase returns a wired ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a wired ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Snapshots)
}

// DashboardUseCase returns a wired Dashboard use case.
func (c *Container) DashboardUseCase() *usecase.Dashboard {
	return usecase.NewDashboard(c.Snapshots, c.Clock)
}

// ExportDataUseCase returns a wired ExportData use case.
func (c *Container) ExportDataUseCase() *usecase.ExportData {
	return usecase.NewExportData(c.Snapshots, c.Clock, c.Logger)
}

// ImportDataUseCase returns a wired ImportData use case.
func (c *Container) ImportDataUseCase() *usecase.ImportData {
	return usecase.NewImportData(c.Projects, c.Tasks, c.Logger)
}

// ImportTasksUseCase returns a wired ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Projects, c.Clock, c.Logger)
}

// SetThemeUseCase returns a wired SetTheme use case.
func (c *Container) SetThemeUseCase() *usecase.SetTheme {
	return usecase.NewSetTheme(c.Settings)
}
