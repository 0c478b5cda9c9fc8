package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export all data to a JSON file",
		GroupID: groupData,
		Long: `Write a full export of projects and tasks to a JSON document.

The file is named deterministically by the current date, e.g.
pmdash-export-2026-08-31.json, and can be restored with 'pmdash import'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportDataUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportDataInput{})
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, out.FileName)
			if err := os.WriteFile(path, out.Content, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d project(s) and %d task(s) to %s\n",
				len(out.Document.Projects), len(out.Document.Tasks), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the export file into")
	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "import <file>",
		Short:   "Restore data from an export file",
		GroupID: groupData,
		Long: `Replace both collections with the contents of an export file.

The document is validated before anything is touched: duplicate IDs or
tasks referencing unknown projects abort the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0]) //nolint:gosec // Path comes from the user's own argument
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			uc := c.ImportDataUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportDataInput{Content: content})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d project(s) and %d task(s)\n", out.Projects, out.Tasks)
			return nil
		},
	}
}
