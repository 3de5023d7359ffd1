package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/zerr"
)

func prettytable(t *testing.T) domain.PackageSpec {
	t.Helper()
	spec, err := domain.NewPackageSpec("python-prettytable", "PrettyTable", "0.7.2", "pip")
	require.NoError(t, err)
	return spec
}

// requireInvalidField asserts err is ErrInvalidInput carrying the given field.
func requireInvalidField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrInvalidInput.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, field, zErr.Metadata()["field"])
}

func TestResolveInstallerPath(t *testing.T) {
	roots := []string{"/opt/app", "C:/app", "relative", "/opt/with space", "/"}

	for _, root := range roots {
		t.Run(root, func(t *testing.T) {
			win, err := domain.ResolveInstallerPath(domain.PlatformWindows, root)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(win, "/embedded/python/Scripts/pip.exe"), win)
			assert.Equal(t, root+"/embedded/python/Scripts/pip.exe", win)

			posix, err := domain.ResolveInstallerPath(domain.PlatformPOSIX, root)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(posix, "/embedded/bin/pip"), posix)
			assert.Equal(t, root+"/embedded/bin/pip", posix)
		})
	}
}

func TestResolveInstallerPath_EmptyRoot(t *testing.T) {
	for _, p := range []domain.Platform{domain.PlatformWindows, domain.PlatformPOSIX} {
		path, err := domain.ResolveInstallerPath(p, "")
		requireInvalidField(t, err, "install_root")
		assert.Empty(t, path)
	}
}

func TestResolveInstallerPath_UnknownPlatform(t *testing.T) {
	path, err := domain.ResolveInstallerPath(domain.Platform(0), "/opt/app")
	requireInvalidField(t, err, "platform")
	assert.Empty(t, path)

	_, err = domain.ResolveInstallerPath(domain.Platform(42), "/opt/app")
	requireInvalidField(t, err, "platform")
}

func TestBuildInstallCommand_ForceFlag(t *testing.T) {
	spec := prettytable(t)

	forced, err := domain.BuildInstallCommand(spec, "/opt/app/embedded/bin/pip", true)
	require.NoError(t, err)
	assert.Contains(t, forced, " -I PrettyTable==0.7.2")
	assert.True(t, strings.HasSuffix(forced, " -I "+spec.Requirement()))

	plain, err := domain.BuildInstallCommand(spec, "/opt/app/embedded/bin/pip", false)
	require.NoError(t, err)
	assert.NotContains(t, plain, "-I")
	assert.Equal(t, "/opt/app/embedded/bin/pip install PrettyTable==0.7.2", plain)
}

func TestBuildInstallCommand_SingleSeparator(t *testing.T) {
	spec := prettytable(t)
	for _, force := range []bool{true, false} {
		cmd, err := domain.BuildInstallCommand(spec, "pip", force)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(cmd, "=="), cmd)
	}
}

func TestBuildInstallCommand_InvalidInput(t *testing.T) {
	var zero domain.PackageSpec

	cmd, err := domain.BuildInstallCommand(zero, "/opt/app/embedded/bin/pip", true)
	requireInvalidField(t, err, "registry_name")
	assert.Empty(t, cmd)

	cmd, err = domain.BuildInstallCommand(prettytable(t), "", true)
	requireInvalidField(t, err, "installer_path")
	assert.Empty(t, cmd)
}

func TestInstallArgs(t *testing.T) {
	args, err := domain.InstallArgs(prettytable(t), "C:/Program Files/app/embedded/python/Scripts/pip.exe", true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"C:/Program Files/app/embedded/python/Scripts/pip.exe",
		"install",
		"-I",
		"PrettyTable==0.7.2",
	}, args)

	args, err = domain.InstallArgs(prettytable(t), "pip", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"pip", "install", "PrettyTable==0.7.2"}, args)
}

func TestEndToEnd(t *testing.T) {
	tests := []struct {
		name          string
		platform      domain.Platform
		root          string
		wantInstaller string
		wantCommand   string
	}{
		{
			name:          "posix",
			platform:      domain.PlatformPOSIX,
			root:          "/opt/app",
			wantInstaller: "/opt/app/embedded/bin/pip",
			wantCommand:   "/opt/app/embedded/bin/pip install -I PrettyTable==0.7.2",
		},
		{
			name:          "windows",
			platform:      domain.PlatformWindows,
			root:          "C:/app",
			wantInstaller: "C:/app/embedded/python/Scripts/pip.exe",
			wantCommand:   "C:/app/embedded/python/Scripts/pip.exe install -I PrettyTable==0.7.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installer, err := domain.ResolveInstallerPath(tt.platform, tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInstaller, installer)

			cmd, err := domain.BuildInstallCommand(prettytable(t), installer, true)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCommand, cmd)
		})
	}
}

func TestNewInstallStep(t *testing.T) {
	sw := domain.Software{Spec: prettytable(t), ForceReinstall: true}

	step, err := domain.NewInstallStep(sw, domain.PlatformPOSIX, "/opt/app/embedded/bin/pip")
	require.NoError(t, err)
	assert.Equal(t, "/opt/app/embedded/bin/pip install -I PrettyTable==0.7.2", step.Command)
	assert.Equal(t, strings.Join(step.Args, " "), step.Command)
	assert.Equal(t, domain.PlatformPOSIX, step.Platform)
	assert.True(t, step.ForceReinstall)

	_, err = domain.NewInstallStep(sw, domain.PlatformPOSIX, "")
	requireInvalidField(t, err, "installer_path")
}
