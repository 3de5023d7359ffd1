package config

// Projectfile represents the structure of the pipstep project file.
// The same fields are read from YAML and TOML.
type Projectfile struct {
	Version     string        `yaml:"version"     toml:"version"`
	InstallRoot string        `yaml:"installRoot" toml:"installRoot"`
	Platform    string        `yaml:"platform"    toml:"platform"`
	Software    []SoftwareDTO `yaml:"software"    toml:"software"`
}

// SoftwareDTO represents a software definition in the project file.
type SoftwareDTO struct {
	Name         string   `yaml:"name"         toml:"name"`
	RegistryName string   `yaml:"registryName" toml:"registryName"`
	Version      string   `yaml:"version"      toml:"version"`
	Dependencies []string `yaml:"dependencies" toml:"dependencies"`

	// ForceReinstall defaults to true when omitted.
	ForceReinstall *bool `yaml:"forceReinstall" toml:"forceReinstall"`
}
