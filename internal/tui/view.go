package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/views"
)

const maxBarWidth = 24

// View renders the whole dashboard for the current mode and tab.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.viewForm())
	case modeConfirm:
		b.WriteString(m.viewConfirm())
	default:
		switch m.tab {
		case tabOverview:
			b.WriteString(m.viewOverview())
		case tabProjects:
			b.WriteString(m.viewProjects())
		case tabTasks:
			b.WriteString(m.viewTasks())
		case tabTable:
			b.WriteString(m.viewTable())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

func (m *Model) viewTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		style := m.styles.TabInactive
		if tab(i) == m.tab {
			style = m.styles.TabActive
		}
		rendered = append(rendered, style.Render(name))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)

	if active := m.activeProjectName(); active != "" {
		row += m.styles.ItemDim.Render("  project: " + active)
	}
	return row
}

func (m *Model) viewOverview() string {
	if m.dashboard == nil {
		return m.styles.ItemDim.Render("loading...")
	}
	d := m.dashboard

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card(d.Stats.TotalProjects, "Projects"),
		m.card(d.Stats.TotalTasks, "Tasks"),
		m.card(d.Stats.Completed, "Completed"),
		m.card(d.Stats.Pending, "Pending"),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n")

	b.WriteString(m.styles.SectionTitle.Render("Status"))
	b.WriteString("\n")
	for _, sc := range d.StatusBreakdown {
		b.WriteString(m.barRow(sc.Status.Display(), sc.Count, maxCount(d.StatusBreakdown)))
	}

	b.WriteString(m.styles.SectionTitle.Render("Tasks per project"))
	b.WriteString("\n")
	if len(d.TasksPerProject) == 0 {
		b.WriteString(m.styles.ItemDim.Render("  no projects yet") + "\n")
	}
	projMax := 0
	for _, pc := range d.TasksPerProject {
		projMax = max(projMax, pc.Count)
	}
	for _, pc := range d.TasksPerProject {
		b.WriteString(m.barRow(pc.Name, pc.Count, projMax))
	}

	b.WriteString(m.styles.SectionTitle.Render("Completed, last 7 days"))
	b.WriteString("\n")
	trendMax := 0
	for _, tp := range d.CompletionTrend {
		trendMax = max(trendMax, tp.Count)
	}
	for _, tp := range d.CompletionTrend {
		b.WriteString(m.barRow(tp.Label, tp.Count, trendMax))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ItemNormal.Render(fmt.Sprintf(
		"completion %d%%  ·  productivity %d%%  ·  today %d  ·  this week %d",
		d.CompletionPercentage, d.ProductivityRate, d.TasksCompletedToday, d.WeeklyProgress,
	)))

	return b.String()
}

func (m *Model) card(value int, label string) string {
	content := m.styles.CardValue.Render(fmt.Sprintf("%d", value)) + "\n" +
		m.styles.CardLabel.Render(label)
	return m.styles.Card.Render(content)
}

// barRow renders one horizontal chart bar scaled against the series
// maximum.
func (m *Model) barRow(label string, count, seriesMax int) string {
	width := 0
	if seriesMax > 0 {
		width = count * maxBarWidth / seriesMax
	}
	if count > 0 && width == 0 {
		width = 1
	}
	return fmt.Sprintf("  %s %s %d\n",
		m.styles.BarLabel.Render(fmt.Sprintf("%-12.12s", label)),
		m.styles.Bar.Render(strings.Repeat("█", width)),
		count,
	)
}

func (m *Model) viewProjects() string {
	if len(m.projects) == 0 {
		return m.styles.ItemDim.Render("no projects yet, press n to create one")
	}

	var b strings.Builder
	for i, row := range m.projects {
		cursor := "  "
		style := m.styles.ItemNormal
		if i == m.projCursor {
			cursor = "> "
			style = m.styles.ItemSelected
		}
		marker := " "
		if row.Active {
			marker = "*"
		}
		line := fmt.Sprintf("%s%s %-24.24s %3d task(s)  %s",
			cursor, marker, row.Project.Name, row.TaskCount,
			row.Project.CreatedAt.Format("2006-01-02"))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTasks() string {
	var b strings.Builder

	filter := m.statusFilter
	if filter == views.FilterAll {
		filter = "all statuses"
	}
	b.WriteString(m.styles.ItemDim.Render("filter: " + filter))
	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString("  " + m.search.View())
	}
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.ItemDim.Render("no tasks match"))
		return b.String()
	}

	for i, row := range m.tasks {
		cursor := "  "
		style := m.styles.ItemNormal
		if i == m.taskCursor {
			cursor = "> "
			style = m.styles.ItemSelected
		}
		if row.Task.IsCompleted() && i != m.taskCursor {
			style = m.styles.ItemDone
		}

		box := "[ ]"
		switch row.Task.Status {
		case domain.StatusInProgress:
			box = "[~]"
		case domain.StatusCompleted:
			box = "[x]"
		}

		line := fmt.Sprintf("%s%s %-32.32s", cursor,
			m.styles.statusStyle(row.Task.Status).Render(box), row.Task.Title)
		b.WriteString(style.Render(line))
		b.WriteString(m.styles.ItemDim.Render(fmt.Sprintf("  %s · %s", row.ProjectName, row.Task.Priority)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTable() string {
	var b strings.Builder

	if m.mode == modeSearch || m.tableSearch.Value() != "" {
		b.WriteString(m.tableSearch.View())
		b.WriteString("\n\n")
	}

	header := fmt.Sprintf("  %-32.32s %-16.16s %-12.12s %-8.8s %s",
		"TITLE", "PROJECT", "STATUS", "PRIORITY", "CREATED")
	b.WriteString(m.styles.SectionTitle.Render(header))
	b.WriteString("\n")

	if len(m.table) == 0 {
		b.WriteString(m.styles.ItemDim.Render("  no tasks match"))
		return b.String()
	}

	for i, row := range m.table {
		cursor := "  "
		style := m.styles.ItemNormal
		if i == m.tableCursor {
			cursor = "> "
			style = m.styles.ItemSelected
		}
		line := fmt.Sprintf("%s%-32.32s %-16.16s %-12.12s %-8.8s %s",
			cursor, row.Task.Title, row.ProjectName, row.Task.Status.Display(),
			row.Task.Priority, row.Task.CreatedAt.Format("2006-01-02"))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewForm() string {
	var b strings.Builder

	title := "New project"
	switch {
	case m.form.kind == formProject && m.form.editID != "":
		title = "Edit project"
	case m.form.kind == formTask && m.form.editID == "":
		title = "New task"
	case m.form.kind == formTask:
		title = "Edit task"
	}
	b.WriteString(m.styles.SectionTitle.Render(title))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		marker := "  "
		if i == m.form.focus {
			marker = "> "
		}
		b.WriteString(marker + m.form.inputs[i].View())
		b.WriteString("\n")
	}

	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.FlashError.Render(m.form.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter save · tab next field · esc cancel"))
	return b.String()
}

func (m *Model) viewConfirm() string {
	prompt := fmt.Sprintf("Delete %s %q? Press y to confirm, esc to cancel.",
		m.confirm.kind, m.confirm.label)
	return m.styles.FlashError.Render(prompt)
}

func (m *Model) viewFooter() string {
	var b strings.Builder

	if m.flash != "" {
		style := m.styles.Flash
		if m.flashErr {
			style = m.styles.FlashError
		}
		b.WriteString(style.Render(m.flash))
		b.WriteString("\n")
	}

	help := "tab views · n new · e edit · d delete · t toggle · / search · f filter · T theme · x export · q quit"
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func maxCount(counts []views.StatusCount) int {
	out := 0
	for _, c := range counts {
		out = max(out, c.Count)
	}
	return out
}
