package cli

import (
	"fmt"

	"github.com/ksaito/pmdash/internal/app"
	"github.com/ksaito/pmdash/internal/domain"
	"github.com/ksaito/pmdash/internal/usecase"
	"github.com/spf13/cobra"
)

// newThemeCommand creates the theme command.
func newThemeCommand(c *app.Container) *cobra.Command {
	var toggle bool

	cmd := &cobra.Command{
		Use:     "theme [light|dark]",
		Short:   "Show or change the UI theme",
		GroupID: groupData,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !toggle {
				fmt.Fprintln(cmd.OutOrStdout(), c.Settings.Theme())
				return nil
			}

			in := usecase.SetThemeInput{Toggle: toggle}
			if len(args) == 1 {
				in.Theme = domain.Theme(args[0])
				in.Toggle = false
			}

			uc := c.SetThemeUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", out.Theme)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toggle, "toggle", false, "Flip between light and dark")
	return cmd
}
