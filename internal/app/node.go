package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/piff/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/adapters/reporter" //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			shell.NodeID,
			reporter.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
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

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.TranspilerFactory](ctx)
	if err != nil {
		return nil, err
	}

	rep, err := graft.Dep[ports.ErrorReporter](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, factory, rep, w, log), nil
}
