package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the embedded installer path for the target platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			_, _, installer, err := c.app.Target(opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), installer)
			return err
		},
	}
}
