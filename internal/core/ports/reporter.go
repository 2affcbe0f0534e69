package ports

import "go.trai.ch/piff/internal/core/domain"

// ErrorReporter renders syntax failures against the offending source text.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type ErrorReporter interface {
	// Report re-reads path and prints the failing line with a column marker.
	Report(path string, err *domain.SyntaxError) error
}
