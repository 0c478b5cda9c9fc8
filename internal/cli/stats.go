package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/spf13/cobra"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show dashboard statistics",
		GroupID: groupData,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.DashboardUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DashboardInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			printDashboard(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// printDashboard renders the dashboard as plain text with inline bars.
func printDashboard(w io.Writer, d *usecase.DashboardOutput) {
	fmt.Fprintf(w, "Projects: %d   Tasks: %d   Completed: %d   Pending: %d\n\n",
		d.Stats.TotalProjects, d.Stats.TotalTasks, d.Stats.Completed, d.Stats.Pending)

	fmt.Fprintln(w, "By status:")
	for _, sc := range d.StatusBreakdown {
		fmt.Fprintf(w, "  %-12s %s %d\n", sc.Status.Display(), bar(sc.Count), sc.Count)
	}

	if len(d.TasksPerProject) > 0 {
		fmt.Fprintln(w, "\nBy project:")
		for _, pc := range d.TasksPerProject {
			fmt.Fprintf(w, "  %-12s %s %d\n", pc.Name, bar(pc.Count), pc.Count)
		}
	}

	fmt.Fprintln(w, "\nCompleted, last 7 days:")
	for _, tp := range d.CompletionTrend {
		fmt.Fprintf(w, "  %-4s %s %d\n", tp.Label, bar(tp.Count), tp.Count)
	}

	fmt.Fprintf(w, "\nCompletion: %d%%   Productivity (7d): %d%%   Completed today: %d   This week: %d\n",
		d.CompletionPercentage, d.ProductivityRate, d.TasksCompletedToday, d.WeeklyProgress)
}

// bar renders a small unit-width bar for count.
func bar(count int) string {
	const maxWidth = 30
	n := count
	if n > maxWidth {
		n = maxWidth
	}
	return strings.Repeat("█", n)
}
