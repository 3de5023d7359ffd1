package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pipstep/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Install packages with the embedded installer",
		Long:  "Run the install command for each selected package in project file order, stopping at the first failure.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}

			return c.app.Install(cmd.Context(), app.InstallOptions{Options: opts, DryRun: dryRun}, args)
		},
	}

	cmd.Flags().BoolP("dry-run", "n", false, "Log the commands without running them")

	return cmd
}
