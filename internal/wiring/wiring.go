// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/piff/internal/adapters/config"
	_ "go.trai.ch/piff/internal/adapters/fs"
	_ "go.trai.ch/piff/internal/adapters/logger"
	_ "go.trai.ch/piff/internal/adapters/reporter"
	_ "go.trai.ch/piff/internal/adapters/shell"
	_ "go.trai.ch/piff/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/piff/internal/app"
)
