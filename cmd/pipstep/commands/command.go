package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pipstep/internal/app"
)

func (c *CLI) newCommandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "command <name>",
		Short: "Print the install command for a single package without a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			registryName, err := flags.GetString("registry-name")
			if err != nil {
				return err
			}
			version, err := flags.GetString("version")
			if err != nil {
				return err
			}
			platform, err := flags.GetString("platform")
			if err != nil {
				return err
			}
			installRoot, err := flags.GetString("install-root")
			if err != nil {
				return err
			}
			force, err := flags.GetBool("force")
			if err != nil {
				return err
			}
			installerOnly, err := flags.GetBool("installer")
			if err != nil {
				return err
			}

			step, err := app.Describe(app.DescribeRequest{
				Name:           args[0],
				RegistryName:   registryName,
				Version:        version,
				Platform:       platform,
				InstallRoot:    installRoot,
				ForceReinstall: force,
			})
			if err != nil {
				return err
			}

			line := step.Command
			if installerOnly {
				line = step.InstallerPath
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().String("registry-name", "", "Name in the upstream registry (defaults to the package name)")
	cmd.Flags().String("version", "", "Pinned version to install")
	cmd.Flags().BoolP("force", "f", true, "Pass -I to force a reinstall")
	cmd.Flags().Bool("installer", false, "Print only the resolved installer path")

	return cmd
}
