package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t"},
		Short:   "Manage tasks",
		GroupID: groupTask,
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskEditCommand(c),
		newTaskRemoveCommand(c),
		newTaskToggleCommand(c),
		newTaskListCommand(c),
	)

	return cmd
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Project     string
		Priority    string
		Status      string
		From        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task in a project.

Examples:
  # Create a task
  pmdash task add --title "Write release notes" --project <project-id> --priority high

  # Create several tasks from a markdown file
  pmdash task add --from tasks.md

  # Preview tasks from a file without creating
  pmdash task add --from tasks.md --dry-run

File format for --from:
  ---
  title: Task 1
  project: Alpha
  priority: high
  ---
  Description here.

  ---
  title: Task 2
  project: Alpha
  ---
  Second description.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return runTaskImport(cmd, c, opts.From, opts.DryRun)
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				ProjectID:   opts.Project,
				Priority:    domain.Priority(opts.Priority),
				Status:      domain.Status(opts.Status),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %q (%s)\n", out.Task.Title, out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title (required unless --from)")
	cmd.Flags().StringVarP(&opts.Description, "body", "b", "", "Task description")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Owning project ID (required unless --from)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: low, medium, high (default medium)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Status: todo, inprogress, completed (default todo)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a markdown file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "With --from: parse without creating")

	return cmd
}

// runTaskImport handles task add --from.
func runTaskImport(cmd *cobra.Command, c *app.Container, path string, dryRun bool) error {
	content, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.ImportTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	verb := "Created"
	if dryRun {
		verb = "Would create"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s):\n", verb, len(out.Tasks))
	for _, t := range out.Tasks {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s [%s/%s]\n", t.Title, t.Priority, t.Status)
	}
	return nil
}

func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Project     string
		Priority    string
		Status      string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task. The edit replaces the full record: flags left empty
keep the task's current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.Tasks.GetTask(args[0])
			if err != nil {
				return err
			}
			if current == nil {
				return domain.ErrTaskNotFound
			}

			in := usecase.EditTaskInput{
				TaskID:      args[0],
				Title:       current.Title,
				Description: current.Description,
				ProjectID:   current.ProjectID,
				Priority:    current.Priority,
				Status:      current.Status,
			}
			if cmd.Flags().Changed("title") {
				in.Title = opts.Title
			}
			if cmd.Flags().Changed("body") {
				in.Description = opts.Description
			}
			if cmd.Flags().Changed("project") {
				in.ProjectID = opts.Project
			}
			if cmd.Flags().Changed("priority") {
				in.Priority = domain.Priority(opts.Priority)
			}
			if cmd.Flags().Changed("status") {
				in.Status = domain.Status(opts.Status)
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %q\n", out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "body", "b", "", "New description")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "New owning project ID")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")

	return cmd
}

func newTaskRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %q\n", out.Task.Title)
			return nil
		},
	}
}

func newTaskToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task between completed and todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ToggleTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %q is now %s\n", out.Task.Title, out.Task.Status.Display())
			return nil
		},
	}
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status  string
		Project string
		Search  string
		Table   string
		JSON    bool
	}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `Display a list of tasks.

Output format is tab-separated with columns:
  ID, TITLE, PROJECT, STATUS, PRIORITY, CREATED

Examples:
  # List all tasks
  pmdash task ls

  # Only tasks still to do in one project
  pmdash task ls --status todo --project <project-id>

  # Search titles and descriptions
  pmdash task ls --search "release"

  # Table search across title, project name, status, and priority
  pmdash task ls --table high`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ListTasksInput{
				Status:  opts.Status,
				Project: opts.Project,
				Search:  opts.Search,
			}
			if cmd.Flags().Changed("table") {
				in.Table = true
				in.TableSearch = opts.Table
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			if opts.JSON {
				return printJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status (todo, inprogress, completed)")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Filter by project ID")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search titles and descriptions")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table search across title/project/status/priority")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskList writes tasks in tab-separated columns.
func printTaskList(w io.Writer, rows []usecase.TaskRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPROJECT\tSTATUS\tPRIORITY\tCREATED")
	for _, row := range rows {
		project := row.ProjectName
		if project == "" {
			project = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Task.ID,
			row.Task.Title,
			project,
			row.Task.Status.Display(),
			row.Task.Priority,
			row.Task.CreatedAt.Format("2006-01-02"),
		)
	}
	_ = tw.Flush()
}
