package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipstep/internal/core/domain"
)

func TestNewPackageSpec(t *testing.T) {
	spec, err := domain.NewPackageSpec("python-prettytable", "PrettyTable", "0.7.2", "pip")
	require.NoError(t, err)

	assert.Equal(t, "python-prettytable", spec.Name())
	assert.Equal(t, "PrettyTable", spec.RegistryName())
	assert.Equal(t, "0.7.2", spec.Version())
	assert.Equal(t, []string{"pip"}, spec.Dependencies())
	assert.Equal(t, "PrettyTable==0.7.2", spec.Requirement())
}

func TestNewPackageSpec_Immutable(t *testing.T) {
	deps := []string{"pip", "setuptools"}
	spec, err := domain.NewPackageSpec("a", "A", "1.0", deps...)
	require.NoError(t, err)

	deps[0] = "mutated"
	assert.Equal(t, []string{"pip", "setuptools"}, spec.Dependencies())

	got := spec.Dependencies()
	got[1] = "mutated"
	assert.Equal(t, []string{"pip", "setuptools"}, spec.Dependencies())
}

func TestNewPackageSpec_NoDependencies(t *testing.T) {
	spec, err := domain.NewPackageSpec("pip", "pip", "20.3.4")
	require.NoError(t, err)
	assert.Empty(t, spec.Dependencies())
}

func TestNewPackageSpec_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		pkg          string
		registryName string
		version      string
		deps         []string
		field        string
	}{
		{name: "empty name", registryName: "A", version: "1.0", field: "name"},
		{name: "empty registry name", pkg: "a", version: "1.0", field: "registry_name"},
		{name: "empty version", pkg: "a", registryName: "A", field: "version"},
		{name: "wildcard", pkg: "a", registryName: "A", version: "1.*", field: "version"},
		{name: "range", pkg: "a", registryName: "A", version: ">=1.0", field: "version"},
		{name: "compound range", pkg: "a", registryName: "A", version: "1.0,<2", field: "version"},
		{name: "compatible release", pkg: "a", registryName: "A", version: "~1.0", field: "version"},
		{name: "latest", pkg: "a", registryName: "A", version: "latest", field: "version"},
		{name: "whitespace", pkg: "a", registryName: "A", version: "1.0 2.0", field: "version"},
		{name: "empty dependency", pkg: "a", registryName: "A", version: "1.0", deps: []string{""}, field: "dependencies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPackageSpec(tt.pkg, tt.registryName, tt.version, tt.deps...)
			requireInvalidField(t, err, tt.field)
		})
	}
}

func TestIsPinnedVersion(t *testing.T) {
	pinned := []string{"0.7.2", "1.0", "2024.1.post1", "1.0rc1", "3.0.0+local"}
	for _, v := range pinned {
		assert.True(t, domain.IsPinnedVersion(v), v)
	}

	unpinned := []string{"", "*", "LATEST", "^1.2", "!=1.0", "==1.0"}
	for _, v := range unpinned {
		assert.False(t, domain.IsPinnedVersion(v), v)
	}
}
