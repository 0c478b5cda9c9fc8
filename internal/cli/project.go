package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/spf13/cobra"
)

// newProjectCommand creates the project command group.
func newProjectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
		GroupID: groupProject,
	}

	cmd.AddCommand(
		newProjectAddCommand(c),
		newProjectEditCommand(c),
		newProjectRemoveCommand(c),
		newProjectListCommand(c),
		newProjectSelectCommand(c),
	)

	return cmd
}

func newProjectAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CreateProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateProjectInput{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %q (%s)\n", out.Project.Name, out.Project.ID)
			return nil
		},
	}
}

func newProjectEditCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.EditProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EditProjectInput{
				ProjectID: args[0],
				Name:      args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed project to %q\n", out.Project.Name)
			return nil
		},
	}
}

func newProjectRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a project (rejected while it still has tasks)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteProjectInput{ProjectID: args[0]})
			if err != nil {
				var dep *domain.DependencyError
				if errors.As(err, &dep) {
					return fmt.Errorf("%w; delete or reassign them first", dep)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %q\n", out.Project.Name)
			return nil
		},
	}
}

func newProjectListCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListProjectsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListProjectsInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out.Projects)
			}
			printProjectList(cmd.OutOrStdout(), out.Projects)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newProjectSelectCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Toggle the active project filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.SelectProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SelectProjectInput{ProjectID: args[0]})
			if err != nil {
				return err
			}
			if out.ActiveProject == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared active project")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Active project: %s\n", out.ActiveProject)
			}
			return nil
		},
	}
}

// printProjectList writes projects in tab-separated columns.
func printProjectList(w io.Writer, rows []usecase.ProjectRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No projects yet. Create one with 'pmdash project add <name>'.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTASKS\tCREATED")
	for _, row := range rows {
		name := row.Project.Name
		if row.Active {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			row.Project.ID,
			name,
			row.TaskCount,
			row.Project.CreatedAt.Format("2006-01-02"),
		)
	}
	_ = tw.Flush()
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
