package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [packages...]",
		Short: "Print the install command for each package",
		Long:  "Print the install command for each selected package in project file order. With no arguments every package is planned.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			steps, err := c.app.Plan(cmd.Context(), opts, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range steps {
				if _, err := fmt.Fprintln(out, steps[i].Command); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
