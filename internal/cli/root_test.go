package cli

import (
	"testing"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "the dashboard should launch when no arguments are provided")
}

func TestNewRootCommand_WithHelp_DoesNotLaunchTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "help must not start the dashboard")
}

func TestNewRootCommand_HasCommandGroups(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	groups := make([]string, 0, 3)
	for _, g := range root.Groups() {
		groups = append(groups, g.ID)
	}
	assert.ElementsMatch(t, []string{groupProject, groupTask, groupData}, groups)

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"project", "task", "stats", "export", "import", "theme"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
