// Package tui implements the interactive dashboard. It is a pure
// presentation collaborator: every user intent is forwarded to a use
// case, and after each mutation all view models are recomputed and the
// whole screen re-renders.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/ksaito/pmdash/internal/views"
)

// tab identifies the visible dashboard view.
type tab int

const (
	tabOverview tab = iota
	tabProjects
	tabTasks
	tabTable
	tabCount
)

var tabNames = []string{"Overview", "Projects", "Tasks", "Table"}

// mode identifies the interaction state.
type mode int

const (
	modeNormal mode = iota
	modeForm
	modeConfirm
	modeSearch
)

// confirmState holds a pending delete awaiting confirmation.
type confirmState struct {
	kind  string // "project" or "task"
	id    string
	label string
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	c      *app.Container
	keys   KeyMap
	styles Styles

	tab  tab
	mode mode

	width  int
	height int

	// View models, recomputed wholesale after every mutation.
	dashboard *usecase.DashboardOutput
	projects  []usecase.ProjectRow
	tasks     []usecase.TaskRow
	table     []usecase.TaskRow

	// Per-tab cursors.
	projCursor  int
	taskCursor  int
	tableCursor int

	statusFilter string
	search       textinput.Model
	tableSearch  textinput.Model

	form    *form
	confirm *confirmState

	flash    string
	flashErr bool
}

// New creates the dashboard model.
func New(c *app.Container) *Model {
	search := textinput.New()
	search.Placeholder = "search tasks"
	search.CharLimit = 64

	tableSearch := textinput.New()
	tableSearch.Placeholder = "search title, project, status, priority"
	tableSearch.CharLimit = 64

	return &Model{
		c:            c,
		keys:         DefaultKeyMap(),
		styles:       NewStyles(PaletteFor(c.Settings.Theme())),
		statusFilter: views.FilterAll,
		search:       search,
		tableSearch:  tableSearch,
	}
}

// Init loads the initial view models.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd recomputes every view model from the repository.
func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		dash, err := m.c.DashboardUseCase().Execute(ctx, usecase.DashboardInput{})
		if err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}

		projects, err := m.c.ListProjectsUseCase().Execute(ctx, usecase.ListProjectsInput{})
		if err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}

		tasks, err := m.c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{
			Status:  m.statusFilter,
			Project: m.c.Settings.ActiveProject(),
			Search:  m.search.Value(),
		})
		if err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}

		table, err := m.c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{
			Table:       true,
			TableSearch: m.tableSearch.Value(),
		})
		if err != nil {
			return MsgFlash{Text: err.Error(), IsError: true}
		}

		return MsgRefreshed{
			Dashboard: dash,
			Projects:  projects.Projects,
			Tasks:     tasks.Tasks,
			Table:     table.Tasks,
		}
	}
}

// selectedProject returns the project under the cursor, or nil.
func (m *Model) selectedProject() *usecase.ProjectRow {
	if m.projCursor < 0 || m.projCursor >= len(m.projects) {
		return nil
	}
	return &m.projects[m.projCursor]
}

// selectedTask returns the task under the cursor of the active task
// view, or nil.
func (m *Model) selectedTask() *usecase.TaskRow {
	rows, cursor := m.tasks, m.taskCursor
	if m.tab == tabTable {
		rows, cursor = m.table, m.tableCursor
	}
	if cursor < 0 || cursor >= len(rows) {
		return nil
	}
	return &rows[cursor]
}

// clampCursors keeps all cursors inside their lists after a refresh.
func (m *Model) clampCursors() {
	m.projCursor = clamp(m.projCursor, len(m.projects))
	m.taskCursor = clamp(m.taskCursor, len(m.tasks))
	m.tableCursor = clamp(m.tableCursor, len(m.table))
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
