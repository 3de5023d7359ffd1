// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/pipstep/internal/core/domain"
)

// Executor defines the interface for running install steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's argument vector, streaming the installer's
	// output to stdout and stderr.
	//
	// It returns an error if the installer cannot be started or exits non-zero.
	Execute(ctx context.Context, step *domain.InstallStep, stdout, stderr io.Writer) error
}
