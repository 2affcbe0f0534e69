// Package app implements the application layer for piff.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/piff/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/piff/internal/engine/batch"
	"go.trai.ch/piff/internal/engine/compiler"
	"go.trai.ch/piff/internal/engine/watch"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.PathResolver
	factory      ports.TranspilerFactory
	reporter     ports.ErrorReporter
	watcher      ports.Watcher
	logger       ports.Logger

	stdin   io.Reader
	stdout  io.Writer
	workDir string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.PathResolver,
	factory ports.TranspilerFactory,
	reporter ports.ErrorReporter,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		factory:      factory,
		reporter:     reporter,
		watcher:      watcher,
		logger:       log,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// WithIO replaces the standard streams used in stdin mode.
// This is primarily used for testing.
func (a *App) WithIO(stdin io.Reader, stdout io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	return a
}

// WithWorkDir sets the directory the configuration search starts from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Run loads the project settings and performs the operation selected by opts.
// In watch mode it returns only when ctx is cancelled or the watcher fails.
func (a *App) Run(ctx context.Context, opts domain.Options) error {
	// 1. Load the settings
	cwd, err := a.cwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Build the compiler for this run
	transpiler, err := a.factory.NewTranspiler(settings)
	if err != nil {
		return zerr.Wrap(err, "failed to create transpiler")
	}
	comp := compiler.NewCompiler(transpiler, fs.NewStalenessOracle(opts.Force), a.logger)

	if opts.Mode == domain.ModeStdin {
		return comp.CompileStdin(ctx, a.stdin, a.stdout)
	}

	// 3. Resolve patterns; a missing literal path aborts the run
	files, err := a.resolver.Resolve(opts.Patterns)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(comp, a.reporter, a.logger)

	switch opts.Mode {
	case domain.ModeFormat:
		return runner.Run(ctx, files, batch.OpFormat)
	case domain.ModeWatch:
		patterns, err := a.resolver.Patterns(opts.Patterns)
		if err != nil {
			return err
		}
		return watch.NewLoop(a.watcher, runner, a.logger, settings).Run(ctx, patterns, files)
	default:
		return runner.Run(ctx, files, batch.OpCompile)
	}
}

func (a *App) cwd() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	return os.Getwd()
}
