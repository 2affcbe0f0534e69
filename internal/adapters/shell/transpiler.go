// Package shell runs the external transpile and format commands.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

var (
	_ ports.Transpiler        = (*Transpiler)(nil)
	_ ports.TranspilerFactory = (*Factory)(nil)
)

// Transpiler implements ports.Transpiler by piping source text through
// external commands.
type Transpiler struct {
	transpile []string
	format    []string
}

// NewTranspiler creates a Transpiler from the transpile and format command lines.
func NewTranspiler(transpileCmd, formatCmd string) (*Transpiler, error) {
	transpile, err := SplitCommand(transpileCmd)
	if err != nil {
		return nil, zerr.With(err, "setting", "transpile")
	}
	format, err := SplitCommand(formatCmd)
	if err != nil {
		return nil, zerr.With(err, "setting", "format")
	}
	return &Transpiler{transpile: transpile, format: format}, nil
}

// SplitCommand splits a command line into its words using shell quoting rules.
// Environment variables in the line are expanded.
func SplitCommand(line string) ([]string, error) {
	args, err := shell.Fields(line, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommand.Error()), "command", line)
	}
	if len(args) == 0 || args[0] == "" {
		return nil, zerr.With(domain.ErrEmptyCommand, "command", line)
	}
	return args, nil
}

// Transpile runs the transpile command with src on its standard input.
func (t *Transpiler) Transpile(ctx context.Context, src string) (string, error) {
	return run(ctx, t.transpile, src)
}

// Format runs the format command with src on its standard input.
func (t *Transpiler) Format(ctx context.Context, src string) (string, error) {
	return run(ctx, t.format, src)
}

func run(ctx context.Context, argv []string, src string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user configured command
	cmd.Stdin = strings.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrTranspileFailed.Error()), "command", argv[0])
		}
		if syntaxErr := parseSyntaxError(stderr.Bytes()); syntaxErr != nil {
			return "", syntaxErr
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrTranspileFailed.Error()), "exit_code", exitErr.ExitCode())
		return "", zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// parseSyntaxError decodes a located syntax error from the collaborator's
// stderr. It returns nil when stderr does not carry one.
func parseSyntaxError(stderr []byte) *domain.SyntaxError {
	var syntaxErr domain.SyntaxError
	if err := json.Unmarshal(bytes.TrimSpace(stderr), &syntaxErr); err != nil {
		return nil
	}
	if syntaxErr.Location.Start.Line < 1 {
		return nil
	}
	return &syntaxErr
}

// Factory builds Transpilers from project settings.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewTranspiler implements ports.TranspilerFactory.
func (f *Factory) NewTranspiler(settings domain.Settings) (ports.Transpiler, error) {
	return NewTranspiler(settings.TranspileCommand, settings.FormatCommand)
}
