// Package watch recompiles source files as they are added or changed.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/piff/internal/adapters/watcher"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/piff/internal/engine/batch"
	"golang.org/x/sync/errgroup"
)

const readyBuffer = 64

// Processor compiles one file and reports failures itself.
type Processor interface {
	Process(ctx context.Context, path string, op batch.Op) bool
}

// Loop is the coordinating loop of watch mode. It turns watcher events into
// compiles: add events compile immediately, change events after the debounce
// window. Every event leads to its own compile, started in its own goroutine.
type Loop struct {
	watcher   ports.Watcher
	processor Processor
	logger    ports.Logger
	window    time.Duration
	ignored   []string
}

// NewLoop creates a new Loop.
func NewLoop(w ports.Watcher, processor Processor, logger ports.Logger, settings domain.Settings) *Loop {
	return &Loop{
		watcher:   w,
		processor: processor,
		logger:    logger,
		window:    settings.DebounceWindow,
		ignored:   settings.IgnoredDirs,
	}
}

// Run watches patterns and compiles files until ctx is cancelled. Every file
// in files is compiled once up front as if it had just been added. Run returns
// once the compiles in flight have finished.
func (l *Loop) Run(ctx context.Context, patterns, files []string) error {
	if err := l.watcher.Start(ctx, Roots(patterns), l.ignored); err != nil {
		return err
	}
	defer func() { _ = l.watcher.Stop() }()

	matchers := cleanPatterns(patterns)
	ready := make(chan string, readyBuffer)

	g, gctx := errgroup.WithContext(ctx)

	enqueue := func(path string) {
		select {
		case ready <- path:
		case <-gctx.Done():
		}
	}

	delayer := watcher.NewDelayer(l.window, enqueue)
	defer delayer.Stop()

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case path := <-ready:
				// A compile that hangs must not hold up compiles of other paths.
				g.Go(func() error {
					l.processor.Process(gctx, path, batch.OpCompile)
					return nil
				})
			}
		}
	})

	g.Go(func() error {
		for _, file := range files {
			enqueue(file)
		}
		l.logger.Info("watching " + strings.Join(patterns, " "))

		for event := range l.watcher.Events() {
			if !matches(matchers, event.Path) {
				continue
			}
			switch event.Operation {
			case ports.OpAdd:
				enqueue(event.Path)
			case ports.OpChange:
				delayer.Schedule(event.Path)
			}
		}

		if ctx.Err() != nil {
			return nil
		}
		return domain.ErrWatcherStopped
	})

	return g.Wait()
}

// Roots returns the directories to watch for the given patterns: the static
// prefix of each glob, or the directory of a literal path.
func Roots(patterns []string) []string {
	seen := make(map[string]struct{})
	roots := make([]string, 0, len(patterns))
	for _, p := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
		root := filepath.FromSlash(base)
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	return roots
}

func cleanPatterns(patterns []string) []string {
	cleaned := make([]string, len(patterns))
	for i, p := range patterns {
		cleaned[i] = filepath.ToSlash(filepath.Clean(p))
	}
	return cleaned
}

// matches reports whether path is a source file selected by one of patterns.
func matches(patterns []string, path string) bool {
	if !domain.IsSource(path) {
		return false
	}
	path = filepath.ToSlash(filepath.Clean(path))
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
