package domain

import "strings"

const (
	windowsInstallerSuffix = "/embedded/python/Scripts/pip.exe"
	posixInstallerSuffix   = "/embedded/bin/pip"

	forceReinstallFlag = "-I"
)

// ResolveInstallerPath returns the path of the embedded pip executable under
// installRoot for the given platform.
func ResolveInstallerPath(platform Platform, installRoot string) (string, error) {
	if installRoot == "" {
		return "", invalid("install_root")
	}

	switch platform {
	case PlatformWindows:
		return installRoot + windowsInstallerSuffix, nil
	case PlatformPOSIX:
		return installRoot + posixInstallerSuffix, nil
	default:
		return "", invalid("platform")
	}
}

// InstallArgs returns the install command as an argument vector:
// installerPath, "install", optionally "-I", and "<registryName>==<version>".
// Specs from NewPackageSpec always pass the registry name and version checks;
// they guard zero and hand-built values.
func InstallArgs(spec PackageSpec, installerPath string, forceReinstall bool) ([]string, error) {
	if installerPath == "" {
		return nil, invalid("installer_path")
	}
	if spec.RegistryName() == "" {
		return nil, invalid("registry_name")
	}
	if spec.Version() == "" {
		return nil, invalid("version")
	}

	args := make([]string, 0, 4)
	args = append(args, installerPath, "install")
	if forceReinstall {
		args = append(args, forceReinstallFlag)
	}
	return append(args, spec.Requirement()), nil
}

// BuildInstallCommand returns the shell command that installs spec with the
// given installer. Registry name and version are interpolated verbatim; callers
// that feed untrusted values must quote them or use InstallArgs instead.
func BuildInstallCommand(spec PackageSpec, installerPath string, forceReinstall bool) (string, error) {
	args, err := InstallArgs(spec, installerPath, forceReinstall)
	if err != nil {
		return "", err
	}
	return strings.Join(args, " "), nil
}
