package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyName       = errors.New("project name cannot be empty")
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrNoProject       = errors.New("task must belong to a project")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrEmptyFile       = errors.New("file is empty")
	ErrNoTasksInFile   = errors.New("no tasks found in file")
)

// DependencyError rejects deleting a project that still owns tasks.
// The project is untouched until its tasks are deleted or reassigned.
type DependencyError struct {
	ProjectName string
	Count       int
}

// Error implements the error interface.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("project %q has %d dependent task(s)", e.ProjectName, e.Count)
}
