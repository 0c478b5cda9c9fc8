// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Project is a named container owning zero or more tasks.
type Project struct {
	CreatedAt time.Time `json:"createdAt"` // Creation time, immutable
	ID        string    `json:"id"`        // Opaque unique ID, immutable
	Name      string    `json:"name"`      // Display name (required, non-empty after trim)
}

// NewProject builds a project with a fresh ID and creation timestamp.
// The name must already be trimmed and non-empty.
func NewProject(name string, now time.Time) Project {
	return Project{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
	}
}

// MatchesName reports whether term is a case-insensitive substring of
// the project name.
func (p *Project) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}
