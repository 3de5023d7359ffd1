// Package config provides the project file loader for pipstep.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project file looked up when no path is given.
const DefaultFilename = "pipstep.yaml"

const supportedVersion = "1"

// Loader implements ports.ProjectLoader. Files ending in .toml are decoded as
// TOML, everything else as YAML.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the project file at path and returns a domain.Project.
// A leading ~ in path or installRoot expands to the user's home directory.
func (l *Loader) Load(path string) (*domain.Project, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to expand config path"), "path", path)
	}
	path = expanded

	var file Projectfile
	if err := readAndUnmarshal(path, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != supportedVersion {
		return nil, zerr.With(zerr.With(zerr.New("unsupported project file version"), "version", file.Version), "path", path)
	}

	installRoot, err := homedir.Expand(file.InstallRoot)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to expand install root"), "install_root", file.InstallRoot), "path", path)
	}

	project := &domain.Project{InstallRoot: installRoot, Dir: filepath.Dir(path)}

	if file.Platform != "" {
		platform, err := domain.ParsePlatform(file.Platform)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		project.Platform = platform
	}

	software, err := buildSoftware(file.Software)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	project.Software = software

	l.warnUndeclaredDependencies(software)

	return project, nil
}

func readAndUnmarshal(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, out)
	} else {
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return nil
}

func buildSoftware(dtos []SoftwareDTO) ([]domain.Software, error) {
	if len(dtos) == 0 {
		return nil, domain.ErrNoPackages
	}

	seen := make(map[string]bool, len(dtos))
	software := make([]domain.Software, 0, len(dtos))

	for i, dto := range dtos {
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicatePackage, "package", dto.Name)
		}
		seen[dto.Name] = true

		registryName := dto.RegistryName
		if registryName == "" {
			registryName = dto.Name
		}

		spec, err := domain.NewPackageSpec(dto.Name, registryName, dto.Version, dto.Dependencies...)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "index", i), "package", dto.Name)
		}

		force := true
		if dto.ForceReinstall != nil {
			force = *dto.ForceReinstall
		}

		software = append(software, domain.Software{Spec: spec, ForceReinstall: force})
	}

	return software, nil
}

// warnUndeclaredDependencies reports dependencies that no software entry defines.
// Dependencies are declarative, so this is never an error.
func (l *Loader) warnUndeclaredDependencies(software []domain.Software) {
	defined := make(map[string]bool, len(software))
	for _, sw := range software {
		defined[sw.Spec.Name()] = true
	}

	for _, sw := range software {
		for _, dep := range sw.Spec.Dependencies() {
			if !defined[dep] {
				l.Logger.Warn(fmt.Sprintf("%s depends on %s, which is not defined in this project", sw.Spec.Name(), dep))
			}
		}
	}
}
