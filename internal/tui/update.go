package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/ksaito/pmdash/internal/views"
)

// statusCycle is the order the status filter steps through.
var statusCycle = []string{
	views.FilterAll,
	string(domain.StatusTodo),
	string(domain.StatusInProgress),
	string(domain.StatusCompleted),
}

// Update handles incoming messages and dispatches on the interaction
// mode for key events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgRefreshed:
		m.dashboard = msg.Dashboard
		m.projects = msg.Projects
		m.tasks = msg.Tasks
		m.table = msg.Table
		m.clampCursors()
		return m, nil

	case MsgFlash:
		m.flash = msg.Text
		m.flashErr = msg.IsError
		return m, nil

	case MsgThemeChanged:
		m.styles = msg.Styles
		return m, nil

	case tea.KeyMsg:
		m.flash = ""
		m.flashErr = false
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.tab == tabProjects {
			m.form = newProjectForm("", "")
		} else {
			m.form = newTaskForm("", nil)
			if active := m.activeProjectName(); active != "" {
				m.form.inputs[fieldProject].SetValue(active)
			}
		}
		m.mode = modeForm
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		switch m.tab {
		case tabProjects:
			if p := m.selectedProject(); p != nil {
				m.form = newProjectForm(p.Project.ID, p.Project.Name)
				m.mode = modeForm
			}
		case tabTasks, tabTable:
			if t := m.selectedTask(); t != nil {
				m.form = newTaskForm(t.Task.ID, t)
				m.mode = modeForm
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		switch m.tab {
		case tabProjects:
			if p := m.selectedProject(); p != nil {
				m.confirm = &confirmState{kind: "project", id: p.Project.ID, label: p.Project.Name}
				m.mode = modeConfirm
			}
		case tabTasks, tabTable:
			if t := m.selectedTask(); t != nil {
				m.confirm = &confirmState{kind: "task", id: t.Task.ID, label: t.Task.Title}
				m.mode = modeConfirm
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTask(); t != nil {
			if _, err := m.c.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: t.Task.ID}); err != nil {
				return m, flashError(err)
			}
			return m, m.refreshCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.tab == tabProjects {
			if p := m.selectedProject(); p != nil {
				if _, err := m.c.SelectProjectUseCase().Execute(context.Background(), usecase.SelectProjectInput{ProjectID: p.Project.ID}); err != nil {
					return m, flashError(err)
				}
				return m, m.refreshCmd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		switch m.tab {
		case tabTasks:
			m.search.Focus()
			m.mode = modeSearch
		case tabTable:
			m.tableSearch.Focus()
			m.mode = modeSearch
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.statusFilter = nextStatusFilter(m.statusFilter)
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Theme):
		out, err := m.c.SetThemeUseCase().Execute(context.Background(), usecase.SetThemeInput{Toggle: true})
		if err != nil {
			return m, flashError(err)
		}
		styles := NewStyles(PaletteFor(out.Theme))
		return m, func() tea.Msg { return MsgThemeChanged{Styles: styles} }

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form = nil
		m.mode = modeNormal
		return m, nil

	case msg.Type == tea.KeyTab:
		m.form.cycleFocus(false)
		return m, nil

	case msg.Type == tea.KeyShiftTab:
		m.form.cycleFocus(true)
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.form.submit(m) {
			m.form = nil
			m.mode = modeNormal
			return m, m.refreshCmd()
		}
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		confirm := m.confirm
		m.confirm = nil
		m.mode = modeNormal
		if err := m.deleteEntity(confirm); err != nil {
			var dep *domain.DependencyError
			if errors.As(err, &dep) {
				return m, flashError(fmt.Errorf("%s; delete or reassign them first", dep.Error()))
			}
			return m, flashError(err)
		}
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Escape):
		m.confirm = nil
		m.mode = modeNormal
		return m, nil
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := &m.search
	if m.tab == tabTable {
		input = &m.tableSearch
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		input.SetValue("")
		input.Blur()
		m.mode = modeNormal
		return m, m.refreshCmd()

	case msg.Type == tea.KeyEnter:
		input.Blur()
		m.mode = modeNormal
		return m, m.refreshCmd()
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	// Re-filter on every keystroke so results track the query.
	return m, tea.Batch(cmd, m.refreshCmd())
}

// deleteEntity runs the delete use case for the confirmed entity.
func (m *Model) deleteEntity(c *confirmState) error {
	ctx := context.Background()
	if c.kind == "project" {
		_, err := m.c.DeleteProjectUseCase().Execute(ctx, usecase.DeleteProjectInput{ProjectID: c.id})
		return err
	}
	_, err := m.c.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{TaskID: c.id})
	return err
}

// exportCmd writes the export document to the working directory.
func (m *Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.c.ExportDataUseCase().Execute(context.Background(), usecase.ExportDataInput{})
		if err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}
		if err := os.WriteFile(out.FileName, out.Content, 0o644); err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}
		return MsgFlash{Text: "exported to " + out.FileName}
	}
}

// moveCursor moves the cursor of the active tab by delta.
func (m *Model) moveCursor(delta int) {
	switch m.tab {
	case tabProjects:
		m.projCursor = clamp(m.projCursor+delta, len(m.projects))
	case tabTasks:
		m.taskCursor = clamp(m.taskCursor+delta, len(m.tasks))
	case tabTable:
		m.tableCursor = clamp(m.tableCursor+delta, len(m.table))
	}
}

// activeProjectName resolves the active project filter to a name.
func (m *Model) activeProjectName() string {
	active := m.c.Settings.ActiveProject()
	if active == "" {
		return ""
	}
	for _, row := range m.projects {
		if row.Project.ID == active {
			return row.Project.Name
		}
	}
	return ""
}

func nextStatusFilter(current string) string {
	for i, s := range statusCycle {
		if s == current {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return views.FilterAll
}

func flashError(err error) tea.Cmd {
	return func() tea.Msg { return MsgFlash{Text: err.Error(), IsError: true} }
}
