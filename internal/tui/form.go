package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/usecase"
)

// formKind distinguishes the two modal forms.
type formKind int

const (
	formProject formKind = iota
	formTask
)

// Field indexes for the task form.
const (
	fieldTitle = iota
	fieldDescription
	fieldProject
	fieldPriority
	fieldStatus
	taskFieldCount
)

// form is a modal create/edit form built from text inputs. On a
// validation error the form stays open with its state intact so the
// user can correct it.
type form struct {
	kind   formKind
	editID string // "" = create
	inputs []textinput.Model
	focus  int
	errMsg string
}

// newProjectForm builds the single-field project form.
func newProjectForm(editID, name string) *form {
	in := textinput.New()
	in.Placeholder = "project name"
	in.CharLimit = 80
	in.SetValue(name)
	in.Focus()

	return &form{
		kind:   formProject,
		editID: editID,
		inputs: []textinput.Model{in},
	}
}

// newTaskForm builds the five-field task form. The project field takes
// a project name and is resolved on submit.
func newTaskForm(editID string, t *usecase.TaskRow) *form {
	labels := []string{"title", "description", "project name", "priority (low/medium/high)", "status (todo/inprogress/completed)"}
	inputs := make([]textinput.Model, taskFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = labels[i]
		inputs[i].CharLimit = 200
	}

	if t != nil {
		inputs[fieldTitle].SetValue(t.Task.Title)
		inputs[fieldDescription].SetValue(t.Task.Description)
		inputs[fieldProject].SetValue(t.ProjectName)
		inputs[fieldPriority].SetValue(string(t.Task.Priority))
		inputs[fieldStatus].SetValue(string(t.Task.Status))
	} else {
		inputs[fieldPriority].SetValue(string(domain.PriorityMedium))
		inputs[fieldStatus].SetValue(string(domain.StatusTodo))
	}
	inputs[0].Focus()

	return &form{
		kind:   formTask,
		editID: editID,
		inputs: inputs,
	}
}

// cycleFocus moves focus to the next (or previous) input.
func (f *form) cycleFocus(backwards bool) {
	f.inputs[f.focus].Blur()
	if backwards {
		f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	} else {
		f.focus = (f.focus + 1) % len(f.inputs)
	}
	f.inputs[f.focus].Focus()
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// submit runs the create or edit use case for the form. It returns
// true when the intent succeeded and the form should close.
func (f *form) submit(m *Model) bool {
	ctx := context.Background()

	var err error
	switch f.kind {
	case formProject:
		name := f.inputs[0].Value()
		if f.editID == "" {
			_, err = m.c.CreateProjectUseCase().Execute(ctx, usecase.CreateProjectInput{Name: name})
		} else {
			_, err = m.c.EditProjectUseCase().Execute(ctx, usecase.EditProjectInput{ProjectID: f.editID, Name: name})
		}
	case formTask:
		projectID := m.resolveProjectName(f.inputs[fieldProject].Value())
		in := usecase.CreateTaskInput{
			Title:       f.inputs[fieldTitle].Value(),
			Description: f.inputs[fieldDescription].Value(),
			ProjectID:   projectID,
			Priority:    domain.Priority(f.inputs[fieldPriority].Value()),
			Status:      domain.Status(f.inputs[fieldStatus].Value()),
		}
		if f.editID == "" {
			_, err = m.c.CreateTaskUseCase().Execute(ctx, in)
		} else {
			_, err = m.c.EditTaskUseCase().Execute(ctx, usecase.EditTaskInput{
				TaskID:      f.editID,
				Title:       in.Title,
				Description: in.Description,
				ProjectID:   in.ProjectID,
				Priority:    in.Priority,
				Status:      in.Status,
			})
		}
	}

	if err != nil {
		f.errMsg = err.Error()
		return false
	}
	return true
}

// resolveProjectName maps a project name to its ID ("" if unknown).
func (m *Model) resolveProjectName(name string) string {
	name = strings.TrimSpace(name)
	for _, row := range m.projects {
		if strings.EqualFold(row.Project.Name, name) {
			return row.Project.ID
		}
	}
	return ""
}
