// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pipstep/internal/adapters/cas"
	_ "go.trai.ch/pipstep/internal/adapters/config"
	_ "go.trai.ch/pipstep/internal/adapters/fingerprint"
	_ "go.trai.ch/pipstep/internal/adapters/logger"
	_ "go.trai.ch/pipstep/internal/adapters/shell"
	_ "go.trai.ch/pipstep/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/pipstep/internal/app"
)
