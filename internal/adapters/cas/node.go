package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipstep/internal/core/ports"
)

// NodeID is the unique identifier for the receipt store factory Graft node.
const NodeID graft.ID = "adapter.receipt_store"

func init() {
	graft.Register(graft.Node[ports.ReceiptStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReceiptStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
