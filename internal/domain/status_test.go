package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Toggle(t *testing.T) {
	tests := []struct {
		name string
		from Status
		want Status
	}{
		{"todo completes", StatusTodo, StatusCompleted},
		{"in progress completes", StatusInProgress, StatusCompleted},
		{"completed reopens to todo", StatusCompleted, StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Toggle())
		})
	}
}

func TestStatus_Toggle_RoundTripFromInProgress(t *testing.T) {
	// Toggling twice from inprogress lands on todo, not back on
	// inprogress. The intermediate state is collapsed.
	s := StatusInProgress.Toggle().Toggle()
	assert.Equal(t, StatusTodo, s)
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "To Do", StatusTodo.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Completed", StatusCompleted.Display())
	assert.Equal(t, "weird", Status("weird").Display())
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, Priority("urgent").IsValid())
	assert.False(t, Priority("").IsValid())
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, DefaultTheme)
}
