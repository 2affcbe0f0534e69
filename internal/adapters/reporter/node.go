package reporter

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/piff/internal/core/ports"
)

// NodeID is the unique identifier for the error reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.ErrorReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ErrorReporter, error) {
			return New(os.Stderr), nil
		},
	})
}
