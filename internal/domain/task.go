package domain

import (
	"strings"
	"time"
)

// Task represents a unit of work owned by a project.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time `json:"createdAt"`             // Creation time, immutable
	UpdatedAt   time.Time `json:"updatedAt"`             // Refreshed on every field mutation and status toggle
	ID          string    `json:"id"`                    // Opaque unique ID, immutable
	Title       string    `json:"title"`                 // Title (required, non-empty after trim)
	Description string    `json:"description"`           // Description (may be empty)
	ProjectID   string    `json:"projectId"`             // Owning project ID (required)
	Priority    Priority  `json:"priority"`              // low / medium / high
	Status      Status    `json:"status"`                // todo / inprogress / completed
}

// IsCompleted returns true if the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// MatchesSearch reports whether term is a case-insensitive substring
// of the title or description. An empty term matches every task.
func (t *Task) MatchesSearch(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

// CompletedOn reports whether the task is completed and its last
// update falls on the same local calendar day as day.
func (t *Task) CompletedOn(day time.Time) bool {
	if !t.IsCompleted() {
		return false
	}
	y1, m1, d1 := t.UpdatedAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
