package ports

import (
	"context"
	"iter"
)

// WatchOp represents the kind of file system event.
type WatchOp uint8

const (
	// OpAdd indicates a file appeared.
	OpAdd WatchOp = iota
	// OpChange indicates a file was written.
	OpChange
)

// String returns the event kind name.
func (o WatchOp) String() string {
	if o == OpAdd {
		return "add"
	}
	return "change"
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the file that changed, as derived from the watched root.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching file system changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directories recursively, skipping
	// directories whose name matches one of ignored.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, roots, ignored []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events. It ends when the
	// watcher stops or the context passed to Start is cancelled.
	Events() iter.Seq[WatchEvent]
}
