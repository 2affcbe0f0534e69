// Package domain holds the core types shared by the piff build engine.
package domain

import "strings"

const (
	// SourceExt is the extension of source files.
	SourceExt = ".piff"

	// TargetExt is the extension of compiled output files.
	TargetExt = ".php"

	// StdinOpen is written before transpiled stdin output.
	StdinOpen = "<?php\n"

	// StdinClose is written after transpiled stdin output.
	StdinClose = "?>"
)

// CompilationUnit pairs a source file with the output path derived from it.
type CompilationUnit struct {
	Source string
	Output string
}

// NewCompilationUnit derives the output path by replacing a trailing source
// extension with the target extension. Paths without the source extension are
// used as given with the target extension appended.
func NewCompilationUnit(source string) CompilationUnit {
	return CompilationUnit{
		Source: source,
		Output: strings.TrimSuffix(source, SourceExt) + TargetExt,
	}
}

// IsSource reports whether path carries the source extension.
func IsSource(path string) bool {
	return strings.HasSuffix(path, SourceExt)
}
