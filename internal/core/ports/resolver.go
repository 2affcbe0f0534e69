package ports

// PathResolver expands user patterns into concrete source files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Patterns rewrites directory patterns into recursive source globs and
	// passes every other pattern through. It fails if a literal path does not exist.
	Patterns(patterns []string) ([]string, error)

	// Resolve rewrites the patterns and expands them into a flat, ordered list
	// of file paths without duplicates.
	Resolve(patterns []string) ([]string, error)
}
