package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// ImportDataInput contains the parameters for importing a data export.
type ImportDataInput struct {
	Content []byte // A document previously produced by export
}

// ImportDataOutput contains the result of importing data.
type ImportDataOutput struct {
	Projects int // Number of imported projects
	Tasks    int // Number of imported tasks
}

// ImportData is the use case for restoring a full export. Both
// collections are replaced wholesale; the document must be internally
// consistent or nothing is mutated.
type ImportData struct {
	projects domain.ProjectRepository
	tasks    domain.TaskRepository
	logger   domain.Logger
}

// NewImportData creates a new ImportData use case.
func NewImportData(projects domain.ProjectRepository, tasks domain.TaskRepository, logger domain.Logger) *ImportData {
	return &ImportData{
		projects: projects,
		tasks:    tasks,
		logger:   logger,
	}
}

// Execute validates and imports an export document.
func (uc *ImportData) Execute(_ context.Context, in ImportDataInput) (*ImportDataOutput, error) {
	var doc domain.ExportDocument
	if err := json.Unmarshal(in.Content, &doc); err != nil {
		return nil, fmt.Errorf("parse export document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export document: %w", err)
	}

	if err := uc.projects.ReplaceAllProjects(doc.Projects); err != nil {
		return nil, fmt.Errorf("replace projects: %w", err)
	}
	if err := uc.tasks.ReplaceAll(doc.Tasks); err != nil {
		return nil, fmt.Errorf("replace tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("import", fmt.Sprintf("imported %d project(s), %d task(s)", len(doc.Projects), len(doc.Tasks)))
	}

	return &ImportDataOutput{
		Projects: len(doc.Projects),
		Tasks:    len(doc.Tasks),
	}, nil
}
