package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piff/internal/core/ports"
)

// NodeID is the unique identifier for the transpiler factory Graft node.
const NodeID graft.ID = "adapter.transpiler_factory"

func init() {
	graft.Register(graft.Node[ports.TranspilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.TranspilerFactory, error) {
			return NewFactory(), nil
		},
	})
}
