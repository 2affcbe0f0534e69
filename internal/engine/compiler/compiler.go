// Package compiler turns single source files into compiled or formatted output.
package compiler

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler runs the transpile and format collaborator on one file at a time.
type Compiler struct {
	transpiler ports.Transpiler
	oracle     ports.StalenessOracle
	logger     ports.Logger
}

// NewCompiler creates a new Compiler with the given dependencies.
func NewCompiler(transpiler ports.Transpiler, oracle ports.StalenessOracle, logger ports.Logger) *Compiler {
	return &Compiler{
		transpiler: transpiler,
		oracle:     oracle,
		logger:     logger,
	}
}

// Update transpiles src into its derived output path when the output is stale.
// A *domain.SyntaxError from the collaborator is returned unwrapped.
func (c *Compiler) Update(ctx context.Context, src string) error {
	unit := domain.NewCompilationUnit(src)

	if !c.oracle.NeedsCompile(unit.Source, unit.Output) {
		c.logger.Info("skipped " + unit.Source)
		return nil
	}

	c.logger.Info("compiling " + unit.Source)

	text, err := readSource(unit.Source)
	if err != nil {
		return err
	}

	out, err := c.transpiler.Transpile(ctx, text)
	if err != nil {
		return withPath(err, unit.Source)
	}

	if err := os.WriteFile(unit.Output, []byte(out), domain.FilePerm); err != nil { //nolint:gosec // output is world-readable like the source
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", unit.Output)
	}

	c.logger.Info("updated " + unit.Output)
	return nil
}

// Format rewrites path in place with its formatted text. The file is left
// untouched when formatting does not change its content.
func (c *Compiler) Format(ctx context.Context, path string) error {
	c.logger.Info("formatting " + path)

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", path)
	}

	text, err := readSource(path)
	if err != nil {
		return err
	}

	formatted, err := c.transpiler.Format(ctx, text)
	if err != nil {
		return withPath(err, path)
	}

	if xxhash.Sum64String(formatted) == xxhash.Sum64String(text) {
		c.logger.Info("unchanged " + path)
		return nil
	}

	if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", path)
	}

	c.logger.Info("formatted " + path)
	return nil
}

// CompileStdin transpiles all of r and writes the result to w wrapped in the
// target language's open and close tags.
func (c *Compiler) CompileStdin(ctx context.Context, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStdinReadFailed.Error())
	}
	if len(data) == 0 {
		return domain.ErrEmptyInput
	}

	out, err := c.transpiler.Transpile(ctx, string(data))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, domain.StdinOpen+out+domain.StdinClose+"\n"); err != nil {
		return zerr.Wrap(err, domain.ErrWriteFailed.Error())
	}
	return nil
}

// readSource reads path and rejects empty content, which is what a file
// looks like between an editor's truncate and its following write.
func readSource(path string) (string, error) {
	// #nosec G304 -- path is a resolved source file
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return "", zerr.With(domain.ErrEmptyInput, "path", path)
	}
	return string(data), nil
}

// withPath attaches the source path to collaborator failures. Syntax errors
// are passed through so callers can render them.
func withPath(err error, path string) error {
	var syntaxErr *domain.SyntaxError
	if errors.As(err, &syntaxErr) {
		return err
	}
	return zerr.With(err, "path", path)
}
