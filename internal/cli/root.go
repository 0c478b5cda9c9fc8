// Package cli provides the command-line interface for pmdash.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupProject = "project"
	groupTask    = "task"
	groupData    = "data"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for pmdash. It receives the
// container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pmdash",
		Short: "Local project and task dashboard",
		Long: `pmdash is a single-user project/task tracker that lives entirely on
your machine. Projects and tasks are kept in a local data directory;
the dashboard renders stats, filterable task lists, and completion
charts over them.

Running pmdash without a subcommand opens the interactive dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupProject, Title: "Project Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
	)

	root.AddCommand(
		newProjectCommand(c),
		newTaskCommand(c),
		newStatsCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newThemeCommand(c),
	)

	return root
}

// launchTUI starts the interactive dashboard.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
