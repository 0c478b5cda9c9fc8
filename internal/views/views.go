// Package views computes derived, read-only projections of the
// repository state. Every function is pure: it takes a snapshot (and
// an explicit reference time where calendar bucketing is involved) and
// returns plain values, so views can be recomputed on demand after any
// mutation.
package views

import (
	"math"
	"strings"
	"time"

	"github.com/ksaito/pmdash/internal/domain"
)

// FilterAll is the filter value matching every status or project.
const FilterAll = "all"

// Stats summarizes both collections for the dashboard stat cards.
type Stats struct {
	TotalProjects int `json:"totalProjects"`
	TotalTasks    int `json:"totalTasks"`
	Completed     int `json:"completed"`
	Pending       int `json:"pending"`
}

// ComputeStats returns collection totals and the completed/pending
// split. Pending counts every non-completed task regardless of status.
func ComputeStats(s domain.Snapshot) Stats {
	st := Stats{
		TotalProjects: len(s.Projects),
		TotalTasks:    len(s.Tasks),
	}
	for i := range s.Tasks {
		if s.Tasks[i].IsCompleted() {
			st.Completed++
		}
	}
	st.Pending = st.TotalTasks - st.Completed
	return st
}

// TaskFilter selects tasks for the main task list. Zero values (or
// FilterAll) pass everything for their field.
type TaskFilter struct {
	Status  string // status value, or ""/"all"
	Project string // project ID, or ""/"all"
	Search  string // case-insensitive substring of title or description
}

func passAll(v string) bool {
	return v == "" || v == FilterAll
}

// FilterTasks returns the tasks matching all three predicates, in
// snapshot order.
func FilterTasks(s domain.Snapshot, f TaskFilter) []domain.Task {
	out := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !passAll(f.Status) && string(t.Status) != f.Status {
			continue
		}
		if !passAll(f.Project) && t.ProjectID != f.Project {
			continue
		}
		if !t.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterTable returns tasks for the table view: term must match (case
// insensitively) the title, the owning project's name, the status, or
// the priority. Any one field matching is sufficient.
func FilterTable(s domain.Snapshot, term string) []domain.Task {
	term = strings.ToLower(term)
	names := projectNames(s)

	out := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		switch {
		case strings.Contains(strings.ToLower(t.Title), term),
			strings.Contains(strings.ToLower(names[t.ProjectID]), term),
			strings.Contains(strings.ToLower(string(t.Status)), term),
			strings.Contains(strings.ToLower(string(t.Priority)), term):
			out = append(out, t)
		}
	}
	return out
}

// StatusCount is one slice of the status breakdown series.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// StatusBreakdown counts tasks per status in fixed order
// (todo, inprogress, completed), zero-filled for absent statuses.
func StatusBreakdown(s domain.Snapshot) []StatusCount {
	counts := make(map[domain.Status]int, 3)
	for i := range s.Tasks {
		counts[s.Tasks[i].Status]++
	}

	out := make([]StatusCount, 0, 3)
	for _, st := range domain.AllStatuses() {
		out = append(out, StatusCount{Status: st, Count: counts[st]})
	}
	return out
}

// ProjectCount is one bar of the tasks-per-project series.
type ProjectCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TasksPerProject maps each project name to the number of tasks
// referencing it, in project list order.
func TasksPerProject(s domain.Snapshot) []ProjectCount {
	byProject := make(map[string]int, len(s.Projects))
	for i := range s.Tasks {
		byProject[s.Tasks[i].ProjectID]++
	}

	out := make([]ProjectCount, 0, len(s.Projects))
	for _, p := range s.Projects {
		out = append(out, ProjectCount{Name: p.Name, Count: byProject[p.ID]})
	}
	return out
}

// TrendPoint is one day of the completion trend series.
type TrendPoint struct {
	Label string `json:"label"` // short weekday name, e.g. "Mon"
	Count int    `json:"count"`
}

// CompletionTrend returns, for each of the last days calendar days
// (oldest first, inclusive of today), the count of tasks completed on
// that local day. A task counts for the day its last update falls on.
func CompletionTrend(s domain.Snapshot, now time.Time, days int) []TrendPoint {
	out := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := TrendPoint{Label: day.Format("Mon")}
		for j := range s.Tasks {
			if s.Tasks[j].CompletedOn(day) {
				point.Count++
			}
		}
		out = append(out, point)
	}
	return out
}

// CompletionPercentage returns round(completed/total*100), or 0 when
// there are no tasks.
func CompletionPercentage(s domain.Snapshot) int {
	total := len(s.Tasks)
	if total == 0 {
		return 0
	}
	completed := ComputeStats(s).Completed
	return roundPercent(completed, total)
}

// productivityWindow is the lookback for the productivity rate.
const productivityWindow = 7 * 24 * time.Hour

// ProductivityRate returns the share of all tasks completed within the
// last seven days, as a rounded percentage.
func ProductivityRate(s domain.Snapshot, now time.Time) int {
	cutoff := now.Add(-productivityWindow)
	recent := 0
	for i := range s.Tasks {
		t := &s.Tasks[i]
		if t.IsCompleted() && !t.UpdatedAt.Before(cutoff) {
			recent++
		}
	}
	return roundPercent(recent, max(len(s.Tasks), 1))
}

// TasksCompletedToday counts completed tasks whose last update falls
// on the current local day.
func TasksCompletedToday(s domain.Snapshot, now time.Time) int {
	n := 0
	for i := range s.Tasks {
		if s.Tasks[i].CompletedOn(now) {
			n++
		}
	}
	return n
}

// projectNames indexes project names by ID for join-style lookups.
func projectNames(s domain.Snapshot) map[string]string {
	names := make(map[string]string, len(s.Projects))
	for _, p := range s.Projects {
		names[p.ID] = p.Name
	}
	return names
}

// roundPercent rounds n/d to the nearest whole percent, half up.
func roundPercent(n, d int) int {
	return int(math.Round(float64(n) / float64(d) * 100))
}
