package domain

import "fmt"

// Position is a 1-based line and column inside a source text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is the span reported by the transpile collaborator. Only Start is
// used for diagnostics.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// SyntaxError is produced by the transpile or format collaborator when the
// source contains a malformed construct.
type SyntaxError struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "syntax error"
	}
	return fmt.Sprintf("%s (line %d, column %d)", msg, e.Location.Start.Line, e.Location.Start.Column)
}

// NewSyntaxError creates a SyntaxError located at the given line and column.
func NewSyntaxError(message string, line, column int) *SyntaxError {
	return &SyntaxError{
		Message: message,
		Location: Location{
			Start: Position{Line: line, Column: column},
		},
	}
}
