// Package app implements the application layer for pipstep.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// App resolves and runs pinned install steps.
type App struct {
	loader        ports.ProjectLoader
	executor      ports.Executor
	stores        ports.ReceiptStoreFactory
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger
	now           func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	executor ports.Executor,
	stores ports.ReceiptStoreFactory,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:        loader,
		executor:      executor,
		stores:        stores,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        logger,
		now:           time.Now,
	}
}

// WithClock replaces the clock used to timestamp receipts.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithTelemetry replaces the telemetry that install steps are recorded on.
// The previous telemetry is not closed.
func (a *App) WithTelemetry(t ports.Telemetry) *App {
	a.telemetry = t
	return a
}

// Options selects the project file and overrides its target.
type Options struct {
	// ConfigPath is the path to the project file.
	ConfigPath string

	// Platform overrides the project's platform when non-empty ("windows" or "posix").
	Platform string

	// InstallRoot overrides the project's install root when non-empty.
	InstallRoot string
}

// InstallOptions controls an install run.
type InstallOptions struct {
	Options

	// DryRun logs the commands without executing them.
	DryRun bool
}

// Target loads the project and returns the platform and installer path it resolves to.
func (a *App) Target(opts Options) (*domain.Project, domain.Platform, string, error) {
	project, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, 0, "", zerr.Wrap(err, "failed to load configuration")
	}

	if opts.InstallRoot != "" {
		project.InstallRoot = opts.InstallRoot
	}
	if opts.Platform != "" {
		platform, err := domain.ParsePlatform(opts.Platform)
		if err != nil {
			return nil, 0, "", err
		}
		project.Platform = platform
	}

	platform := project.TargetPlatform()
	installer, err := domain.ResolveInstallerPath(platform, project.InstallRoot)
	if err != nil {
		return nil, 0, "", err
	}
	return project, platform, installer, nil
}

// Plan returns the install step for each named package, or for every package
// in file order when names is empty. Dependencies are not resolved.
func (a *App) Plan(_ context.Context, opts Options, names []string) ([]domain.InstallStep, error) {
	_, steps, err := a.plan(opts, names)
	return steps, err
}

func (a *App) plan(opts Options, names []string) (*domain.Project, []domain.InstallStep, error) {
	project, platform, installer, err := a.Target(opts)
	if err != nil {
		return nil, nil, err
	}

	selected, err := project.Select(names)
	if err != nil {
		return nil, nil, err
	}

	steps := make([]domain.InstallStep, 0, len(selected))
	for _, sw := range selected {
		step, err := domain.NewInstallStep(sw, platform, installer)
		if err != nil {
			return nil, nil, zerr.With(err, "package", sw.Spec.Name())
		}
		steps = append(steps, step)
	}
	return project, steps, nil
}

func (a *App) openStore(project *domain.Project) (ports.ReceiptStore, error) {
	store, err := a.stores.Open(project.Dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open receipt store"), "dir", project.Dir)
	}
	return store, nil
}

// Install plans and runs the install steps in order, stopping at the first failure.
// Failures are logged and returned joined with domain.ErrInstallFailed.
func (a *App) Install(ctx context.Context, opts InstallOptions, names []string) error {
	project, steps, err := a.plan(opts.Options, names)
	if err != nil {
		return err
	}

	if opts.DryRun {
		for i := range steps {
			a.logger.Info("dry run: " + steps[i].Command)
		}
		return nil
	}

	store, err := a.openStore(project)
	if err != nil {
		return err
	}

	for i := range steps {
		step := &steps[i]

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := a.installStep(ctx, store, step); err != nil {
			err = zerr.With(err, "package", step.Spec.Name())
			a.logger.Error(err)
			return errors.Join(domain.ErrInstallFailed, err)
		}
	}
	return nil
}

func (a *App) installStep(ctx context.Context, store ports.ReceiptStore, step *domain.InstallStep) error {
	ctx, vertex := a.telemetry.Record(ctx, step.Spec.Name())

	a.logger.Info(fmt.Sprintf("installing %s (%s)", step.Spec.Name(), step.Spec.Requirement()))
	vertex.Log(domain.LogLevelInfo, step.Command)

	if err := a.executor.Execute(ctx, step, vertex.Stdout(), vertex.Stderr()); err != nil {
		vertex.Complete(err)
		return err
	}

	receipt := domain.Receipt{
		Package:      step.Spec.Name(),
		RegistryName: step.Spec.RegistryName(),
		Version:      step.Spec.Version(),
		Command:      step.Command,
		Fingerprint:  a.fingerprinter.Fingerprint(step),
		InstalledAt:  a.now().UTC(),
	}
	if err := store.Put(receipt); err != nil {
		err = zerr.Wrap(err, "failed to record install receipt")
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	return nil
}

// Status reports, for each planned step, the last receipt and whether it
// matches the step's current fingerprint.
func (a *App) Status(_ context.Context, opts Options, names []string) ([]domain.PackageStatus, error) {
	project, steps, err := a.plan(opts, names)
	if err != nil {
		return nil, err
	}

	store, err := a.openStore(project)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.PackageStatus, 0, len(steps))
	for _, step := range steps {
		receipt, err := store.Get(step.Spec.Name())
		if err != nil {
			if !errors.Is(err, domain.ErrReceiptReadFailed) {
				err = errors.Join(domain.ErrReceiptReadFailed, zerr.With(err, "package", step.Spec.Name()))
			}
			return nil, err
		}

		status := domain.PackageStatus{Step: step, Receipt: receipt, State: domain.ReceiptMissing}
		if receipt != nil {
			status.State = domain.ReceiptStale
			if receipt.Fingerprint == a.fingerprinter.Fingerprint(&step) {
				status.State = domain.ReceiptCurrent
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// DescribeRequest identifies a single package outside any project file.
type DescribeRequest struct {
	Name           string
	RegistryName   string
	Version        string
	Platform       string
	InstallRoot    string
	ForceReinstall bool
}

// Describe resolves the install step for a single package without loading a
// project file. An empty RegistryName defaults to Name and an empty Platform
// to the host platform.
func Describe(req DescribeRequest) (domain.InstallStep, error) {
	platform := domain.HostPlatform()
	if req.Platform != "" {
		p, err := domain.ParsePlatform(req.Platform)
		if err != nil {
			return domain.InstallStep{}, err
		}
		platform = p
	}

	registryName := req.RegistryName
	if registryName == "" {
		registryName = req.Name
	}

	spec, err := domain.NewPackageSpec(req.Name, registryName, req.Version)
	if err != nil {
		return domain.InstallStep{}, err
	}

	installer, err := domain.ResolveInstallerPath(platform, req.InstallRoot)
	if err != nil {
		return domain.InstallStep{}, err
	}

	return domain.NewInstallStep(domain.Software{Spec: spec, ForceReinstall: req.ForceReinstall}, platform, installer)
}
