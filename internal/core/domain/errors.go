package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidInput is returned when a required field is empty or malformed.
	// The offending field is attached as "field" metadata.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrPackageNotFound is returned when a requested package is not defined in the project.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrDuplicatePackage is returned when two software entries share a name.
	ErrDuplicatePackage = zerr.New("duplicate package")

	// ErrNoPackages is returned when a project file defines no software.
	ErrNoPackages = zerr.New("no packages defined")

	// ErrInstallFailed is returned when an install step fails to execute.
	ErrInstallFailed = zerr.New("install failed")

	// ErrInstallerNotFound is returned when the installer executable does not exist.
	ErrInstallerNotFound = zerr.New("installer not found")

	// ErrReceiptReadFailed is returned when the receipt store cannot be read.
	ErrReceiptReadFailed = zerr.New("failed to read install receipt")
)

// invalid builds an ErrInvalidInput error naming the offending field.
func invalid(field string) error {
	return zerr.With(ErrInvalidInput, "field", field)
}
