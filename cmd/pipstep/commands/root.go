// Package commands implements the CLI commands for pipstep.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pipstep/internal/adapters/config"
	"go.trai.ch/pipstep/internal/adapters/telemetry"
	"go.trai.ch/pipstep/internal/app"
	"go.trai.ch/pipstep/internal/build"
	"go.trai.ch/pipstep/internal/core/ports"
)

// CLI represents the command line interface for pipstep.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// quieter is implemented by loggers that can suppress informational output.
type quieter interface {
	SetQuiet(quiet bool)
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pipstep",
		Short:         "Install pinned Python packages into an embedded runtime",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the project file")
	rootCmd.PersistentFlags().StringP("platform", "p", "", "Target platform (windows or posix); defaults to the project file, then the host")
	rootCmd.PersistentFlags().StringP("install-root", "r", "", "Embedded installation root; overrides the project file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors, and hide step progress")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}
		if q, ok := c.logger.(quieter); ok {
			q.SetQuiet(quiet)
		}
		if quiet && c.app != nil {
			c.app.WithTelemetry(telemetry.NewNoOp())
		}
		return nil
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newPathCmd())
	rootCmd.AddCommand(c.newCommandCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func options(cmd *cobra.Command) (app.Options, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return app.Options{}, err
	}
	platform, err := cmd.Flags().GetString("platform")
	if err != nil {
		return app.Options{}, err
	}
	installRoot, err := cmd.Flags().GetString("install-root")
	if err != nil {
		return app.Options{}, err
	}
	return app.Options{
		ConfigPath:  configPath,
		Platform:    platform,
		InstallRoot: installRoot,
	}, nil
}
