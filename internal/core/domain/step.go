package domain

// InstallStep is a fully resolved install command for one package.
type InstallStep struct {
	Spec           PackageSpec
	Platform       Platform
	InstallerPath  string
	ForceReinstall bool

	// Args is the command as an argument vector, Args[0] being the installer.
	Args []string

	// Command is Args joined by single spaces.
	Command string
}

// NewInstallStep resolves the install command for sw against installerPath.
func NewInstallStep(sw Software, platform Platform, installerPath string) (InstallStep, error) {
	args, err := InstallArgs(sw.Spec, installerPath, sw.ForceReinstall)
	if err != nil {
		return InstallStep{}, err
	}
	cmd, err := BuildInstallCommand(sw.Spec, installerPath, sw.ForceReinstall)
	if err != nil {
		return InstallStep{}, err
	}

	return InstallStep{
		Spec:           sw.Spec,
		Platform:       platform,
		InstallerPath:  installerPath,
		ForceReinstall: sw.ForceReinstall,
		Args:           args,
		Command:        cmd,
	}, nil
}
