package progrock

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipstep/internal/adapters/tui"
	"go.trai.ch/pipstep/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: false,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewRecorder(tui.NewProgress(os.Stdout)), nil
		},
	})
}
