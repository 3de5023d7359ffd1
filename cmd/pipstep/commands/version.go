package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pipstep/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pipstep version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "pipstep", build.Version)
			return err
		},
	}
}
