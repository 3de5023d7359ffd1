package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipstep/internal/adapters/shell"
	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// fakeInstaller writes an executable shell script standing in for pip.
func fakeInstaller(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake installer is a POSIX shell script")
	}

	path := filepath.Join(t.TempDir(), "embedded", "bin", "pip")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func stepFor(t *testing.T, installer string) *domain.InstallStep {
	t.Helper()
	spec, err := domain.NewPackageSpec("python-prettytable", "PrettyTable", "0.7.2")
	require.NoError(t, err)

	step, err := domain.NewInstallStep(domain.Software{Spec: spec, ForceReinstall: true}, domain.PlatformPOSIX, installer)
	require.NoError(t, err)
	return &step
}

func TestExecutor_Execute_PassesArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("install -I PrettyTable==0.7.2").Times(1)

	installer := fakeInstaller(t, `echo "$@"`)

	var stdout bytes.Buffer
	err := shell.NewExecutor(mockLogger).Execute(context.Background(), stepFor(t, installer), &stdout, nil)
	require.NoError(t, err)
	assert.Equal(t, "install -I PrettyTable==0.7.2\n", stdout.String())
}

func TestExecutor_Execute_StderrIsWarned(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("DEPRECATION: old python").Times(1)

	installer := fakeInstaller(t, `echo "DEPRECATION: old python" >&2`)

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), stepFor(t, installer), nil, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)
	mockLogger.EXPECT().Info("tail").Times(1)

	installer := fakeInstaller(t, `printf part1; sleep 0.1; echo part2; printf tail`)

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), stepFor(t, installer), nil, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	installer := fakeInstaller(t, `exit 3`)

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), stepFor(t, installer), nil, nil)
	require.ErrorContains(t, err, "command failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_MissingInstaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	missing := filepath.Join(t.TempDir(), "embedded", "bin", "pip")

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), stepFor(t, missing), nil, nil)
	require.ErrorContains(t, err, domain.ErrInstallerNotFound.Error())
}

func TestExecutor_Execute_EmptyArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	err := shell.NewExecutor(mockLogger).Execute(context.Background(), &domain.InstallStep{}, nil, nil)
	require.ErrorContains(t, err, domain.ErrInvalidInput.Error())
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	installer := fakeInstaller(t, `sleep 5`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell.NewExecutor(mockLogger).Execute(ctx, stepFor(t, installer), nil, nil)
	require.Error(t, err)
}
