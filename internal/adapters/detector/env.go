// Package detector inspects the process environment to pick the input source.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StdinIsTerminal reports whether standard input is an interactive terminal.
// When it is not, piff reads a single source unit from it.
func StdinIsTerminal() bool {
	return IsTerminal(os.Stdin)
}
