package usecase

import (
	"context"

	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/views"
)

// trendDays is the length of the completion trend window.
const trendDays = 7

// DashboardInput contains the parameters for computing the dashboard.
type DashboardInput struct {
	// Empty for now; the dashboard always covers the full snapshot.
}

// DashboardOutput bundles every derived view the presentation layer
// needs for one render: stat cards, the three chart series, and the
// analytics figures.
type DashboardOutput struct {
	Stats                views.Stats          `json:"stats"`
	StatusBreakdown      []views.StatusCount  `json:"statusBreakdown"`
	TasksPerProject      []views.ProjectCount `json:"tasksPerProject"`
	CompletionTrend      []views.TrendPoint   `json:"completionTrend"`
	CompletionPercentage int                  `json:"completionPercentage"`
	ProductivityRate     int                  `json:"productivityRate"`
	TasksCompletedToday  int                  `json:"tasksCompletedToday"`
	WeeklyProgress       int                  `json:"weeklyProgress"`
}

// Dashboard is the use case for computing all derived views at once.
type Dashboard struct {
	snapshots domain.Snapshotter
	clock     domain.Clock
}

// NewDashboard creates a new Dashboard use case.
func NewDashboard(snapshots domain.Snapshotter, clock domain.Clock) *Dashboard {
	return &Dashboard{
		snapshots: snapshots,
		clock:     clock,
	}
}

// Execute recomputes every derived view from the current snapshot.
func (uc *Dashboard) Execute(_ context.Context, _ DashboardInput) (*DashboardOutput, error) {
	snapshot := uc.snapshots.Snapshot()
	now := uc.clock.Now()

	trend := views.CompletionTrend(snapshot, now, trendDays)
	weekly := 0
	for _, p := range trend {
		weekly += p.Count
	}

	return &DashboardOutput{
		Stats:                views.ComputeStats(snapshot),
		StatusBreakdown:      views.StatusBreakdown(snapshot),
		TasksPerProject:      views.TasksPerProject(snapshot),
		CompletionTrend:      trend,
		CompletionPercentage: views.CompletionPercentage(snapshot),
		ProductivityRate:     views.ProductivityRate(snapshot, now),
		TasksCompletedToday:  views.TasksCompletedToday(snapshot, now),
		WeeklyProgress:       weekly,
	}, nil
}
