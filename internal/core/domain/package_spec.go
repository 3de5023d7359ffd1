// Package domain contains the core domain models for pinned package install steps.
package domain

import (
	"slices"
	"strings"
)

// PackageSpec describes one installable package: its local identity, the name
// it is published under in the upstream registry, the exact version to install
// and the names of the packages it depends on.
//
// A PackageSpec is immutable. Build one with NewPackageSpec.
type PackageSpec struct {
	name         string
	registryName string
	version      string
	dependencies []string
}

// NewPackageSpec validates its arguments and returns a PackageSpec.
// The version must be pinned: wildcards, ranges and "latest" are rejected.
func NewPackageSpec(name, registryName, version string, dependencies ...string) (PackageSpec, error) {
	if name == "" {
		return PackageSpec{}, invalid("name")
	}
	if registryName == "" {
		return PackageSpec{}, invalid("registry_name")
	}
	if !IsPinnedVersion(version) {
		return PackageSpec{}, invalid("version")
	}
	for _, dep := range dependencies {
		if dep == "" {
			return PackageSpec{}, invalid("dependencies")
		}
	}

	return PackageSpec{
		name:         name,
		registryName: registryName,
		version:      version,
		dependencies: slices.Clone(dependencies),
	}, nil
}

// Name returns the local package identifier.
func (p PackageSpec) Name() string { return p.name }

// RegistryName returns the name used to look the package up upstream.
func (p PackageSpec) RegistryName() string { return p.registryName }

// Version returns the pinned version.
func (p PackageSpec) Version() string { return p.version }

// Dependencies returns a copy of the declared dependency names.
func (p PackageSpec) Dependencies() []string { return slices.Clone(p.dependencies) }

// Requirement returns the registry requirement token, e.g. "PrettyTable==0.7.2".
func (p PackageSpec) Requirement() string {
	return p.registryName + "==" + p.version
}

// rangeChars are characters that only appear in version specifiers, never in
// a single pinned version.
const rangeChars = "*<>~^!=,"

// IsPinnedVersion reports whether v names exactly one version.
func IsPinnedVersion(v string) bool {
	if v == "" || strings.EqualFold(v, "latest") {
		return false
	}
	if strings.ContainsAny(v, rangeChars) {
		return false
	}
	return !strings.ContainsFunc(v, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
