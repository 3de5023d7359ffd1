package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipstep/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/adapters/fingerprint"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pipstep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			cas.NodeID,
			fingerprint.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.ReceiptStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, stores, fingerprinter, telemetry, log), nil
}
