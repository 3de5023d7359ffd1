package ports

import "go.trai.ch/pipstep/internal/core/domain"

// Fingerprinter computes a stable fingerprint of an install step.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a hex digest of everything that determines what the step installs.
	Fingerprint(step *domain.InstallStep) string
}
