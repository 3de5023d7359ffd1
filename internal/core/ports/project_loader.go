package ports

import "go.trai.ch/pipstep/internal/core/domain"

// ProjectLoader defines the interface for loading the project file.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project file at path and returns the software it declares.
	Load(path string) (*domain.Project, error)
}
