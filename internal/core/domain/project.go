package domain

import "go.trai.ch/zerr"

// Software is a package definition as declared in a project file, together
// with how it should be installed.
type Software struct {
	Spec           PackageSpec
	ForceReinstall bool
}

// Project is the loaded project file: where the embedded runtime lives, which
// platform to target and the software to install, in declaration order.
type Project struct {
	// InstallRoot is the embedded installation root, e.g. "/opt/app".
	InstallRoot string

	// Platform is the target platform. The zero value means "use the host".
	Platform Platform

	// Software lists the package definitions in file order.
	Software []Software

	// Dir is the directory holding the project file. Install receipts are
	// kept beneath it.
	Dir string
}

// TargetPlatform returns the configured platform, falling back to the host.
func (p *Project) TargetPlatform() Platform {
	if p.Platform.Valid() {
		return p.Platform
	}
	return HostPlatform()
}

// Lookup returns the software definition with the given name.
func (p *Project) Lookup(name string) (Software, error) {
	for _, sw := range p.Software {
		if sw.Spec.Name() == name {
			return sw, nil
		}
	}
	return Software{}, zerr.With(ErrPackageNotFound, "package", name)
}

// Select returns the named software in the order requested.
// With no names it returns every definition in file order.
func (p *Project) Select(names []string) ([]Software, error) {
	if len(names) == 0 {
		return append([]Software(nil), p.Software...), nil
	}

	selected := make([]Software, 0, len(names))
	for _, name := range names {
		sw, err := p.Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, sw)
	}
	return selected, nil
}
