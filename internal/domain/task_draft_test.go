package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDrafts_SingleTask(t *testing.T) {
	content := `---
title: Design homepage
project: Website
priority: high
status: inprogress
---
Sketch the hero section and pick a palette.
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Design homepage", drafts[0].Title)
	assert.Equal(t, "Website", drafts[0].Project)
	assert.Equal(t, PriorityHigh, drafts[0].Priority)
	assert.Equal(t, StatusInProgress, drafts[0].Status)
	assert.Equal(t, "Sketch the hero section and pick a palette.", drafts[0].Description)
}

func TestParseTaskDrafts_MultipleTasks(t *testing.T) {
	content := `---
title: First
project: Alpha
---
First body.

---
title: Second
project: Alpha
priority: low
---
Second body.
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "First", drafts[0].Title)
	assert.Equal(t, "Second", drafts[1].Title)
	assert.Equal(t, PriorityLow, drafts[1].Priority)
}

func TestParseTaskDrafts_Defaults(t *testing.T) {
	content := `---
title: Bare minimum
project: Alpha
---
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, PriorityMedium, drafts[0].Priority)
	assert.Equal(t, StatusTodo, drafts[0].Status)
	assert.Empty(t, drafts[0].Description)
}

func TestParseTaskDrafts_SeparatorInsideDescription(t *testing.T) {
	// A bare "---" in a body must not start a new task.
	content := `---
title: With divider
project: Alpha
---
Before the divider.

---

After the divider.
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Contains(t, drafts[0].Description, "After the divider.")
}

func TestParseTaskDrafts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty file", "   \n", ErrEmptyFile},
		{"no frontmatter", "plain text without any task blocks", ErrNoTasksInFile},
		{"missing title", "---\nproject: Alpha\ntitle: \n---\nbody", ErrEmptyTitle},
		{"invalid priority", "---\ntitle: X\npriority: urgent\n---\n", ErrInvalidPriority},
		{"invalid status", "---\ntitle: X\nstatus: done\n---\n", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskDrafts(tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
