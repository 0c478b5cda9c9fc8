package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject_Execute_Success(t *testing.T) {
	// Setup
	repo := testutil.NewMockProjectRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)}
	uc := NewCreateProject(repo, clock, testutil.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), CreateProjectInput{Name: "  Website Redesign  "})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Website Redesign", out.Project.Name, "name is trimmed")
	assert.NotEmpty(t, out.Project.ID)
	assert.Equal(t, clock.NowTime, out.Project.CreatedAt)

	require.Len(t, repo.Projects, 1)
	assert.Equal(t, out.Project, repo.Projects[0])
}

func TestCreateProject_Execute_EmptyName(t *testing.T) {
	repo := testutil.NewMockProjectRepository()
	uc := NewCreateProject(repo, &testutil.MockClock{}, testutil.NopLogger{})

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := uc.Execute(context.Background(), CreateProjectInput{Name: name})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	}
	assert.Empty(t, repo.Projects, "nothing saved on rejection")
}

func TestCreateProject_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockProjectRepository()
	repo.SaveErr = errors.New("save failed")
	uc := NewCreateProject(repo, &testutil.MockClock{}, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), CreateProjectInput{Name: "Alpha"})
	assert.Error(t, err)
}

func TestCreateProject_Execute_UniqueIDs(t *testing.T) {
	repo := testutil.NewMockProjectRepository()
	uc := NewCreateProject(repo, &testutil.MockClock{}, testutil.NopLogger{})

	// Duplicate names are allowed; each creation mints a fresh ID.
	a, err := uc.Execute(context.Background(), CreateProjectInput{Name: "Alpha"})
	require.NoError(t, err)
	b, err := uc.Execute(context.Background(), CreateProjectInput{Name: "Alpha"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Project.ID, b.Project.ID)
	assert.Len(t, repo.Projects, 2)
}
