package usecase

import (
	"context"
	"testing"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectProject_Execute_Toggles(t *testing.T) {
	// Setup
	projects := testutil.NewMockProjectRepository()
	projects.Projects = []domain.Project{
		{ID: "p1", Name: "Alpha"},
		{ID: "p2", Name: "Beta"},
	}
	settings := testutil.NewMockSettingsRepository()
	uc := NewSelectProject(projects, settings)

	// Selecting makes the project active.
	out, err := uc.Execute(context.Background(), SelectProjectInput{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1", out.ActiveProject)

	// Selecting another replaces the filter.
	out, err = uc.Execute(context.Background(), SelectProjectInput{ProjectID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, "p2", out.ActiveProject)

	// Selecting the active project again clears the filter.
	out, err = uc.Execute(context.Background(), SelectProjectInput{ProjectID: "p2"})
	require.NoError(t, err)
	assert.Empty(t, out.ActiveProject)
}

func TestSelectProject_Execute_NotFound(t *testing.T) {
	uc := NewSelectProject(testutil.NewMockProjectRepository(), testutil.NewMockSettingsRepository())

	_, err := uc.Execute(context.Background(), SelectProjectInput{ProjectID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestSetTheme_Execute_Explicit(t *testing.T) {
	settings := testutil.NewMockSettingsRepository()
	uc := NewSetTheme(settings)

	out, err := uc.Execute(context.Background(), SetThemeInput{Theme: domain.ThemeDark})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, out.Theme)
	assert.Equal(t, domain.ThemeDark, settings.CurrentTheme)
}

func TestSetTheme_Execute_Toggle(t *testing.T) {
	settings := testutil.NewMockSettingsRepository()
	uc := NewSetTheme(settings)

	out, err := uc.Execute(context.Background(), SetThemeInput{Toggle: true})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, out.Theme, "default is light, toggle lands on dark")

	out, err = uc.Execute(context.Background(), SetThemeInput{Toggle: true})
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, out.Theme)
}

func TestSetTheme_Execute_Invalid(t *testing.T) {
	uc := NewSetTheme(testutil.NewMockSettingsRepository())

	_, err := uc.Execute(context.Background(), SetThemeInput{Theme: "sepia"})
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}
