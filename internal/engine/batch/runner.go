// Package batch drives resolved files through the compiler one at a time.
package batch

import (
	"context"
	"errors"

	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Op selects what the runner does with each file.
type Op uint8

const (
	// OpCompile transpiles a source file into its output path.
	OpCompile Op = iota
	// OpFormat rewrites a source file with its formatted text.
	OpFormat
)

// FileCompiler is the per-file work the runner sequences.
type FileCompiler interface {
	Update(ctx context.Context, src string) error
	Format(ctx context.Context, path string) error
}

// Runner processes files strictly in sequence and isolates per-file failures.
type Runner struct {
	compiler FileCompiler
	reporter ports.ErrorReporter
	logger   ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(compiler FileCompiler, reporter ports.ErrorReporter, logger ports.Logger) *Runner {
	return &Runner{
		compiler: compiler,
		reporter: reporter,
		logger:   logger,
	}
}

// Run applies op to every file in order. A failing file never stops the
// batch; only cancellation of ctx does, in which case ctx's error is returned.
func (r *Runner) Run(ctx context.Context, files []string, op Op) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Process(ctx, file, op)
	}
	return nil
}

// Process applies op to a single file and reports whether it succeeded.
// Every failure is logged with the path; syntax errors are also rendered by
// the reporter.
func (r *Runner) Process(ctx context.Context, path string, op Op) bool {
	var err error
	switch op {
	case OpFormat:
		err = r.compiler.Format(ctx, path)
	default:
		err = r.compiler.Update(ctx, path)
	}
	if err == nil {
		return true
	}

	var syntaxErr *domain.SyntaxError
	if errors.As(err, &syntaxErr) {
		r.logger.Error(zerr.With(err, "path", path))
		if reportErr := r.reporter.Report(path, syntaxErr); reportErr != nil {
			r.logger.Error(reportErr)
		}
		return false
	}

	if !hasPath(err) {
		err = zerr.With(err, "path", path)
	}
	r.logger.Error(err)
	return false
}

// hasPath reports whether err already carries path metadata.
func hasPath(err error) bool {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return false
	}
	_, ok := zErr.Metadata()["path"]
	return ok
}
