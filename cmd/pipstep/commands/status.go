package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pipstep/internal/adapters/tui"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [packages...]",
		Short: "Show the install receipt state of each package",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			statuses, err := c.app.Status(cmd.Context(), opts, args)
			if err != nil {
				return err
			}

			return tui.RenderStatus(cmd.OutOrStdout(), statuses)
		},
	}
}
