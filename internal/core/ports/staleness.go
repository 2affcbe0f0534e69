package ports

// StalenessOracle decides whether a source file must be recompiled.
//
//go:generate mockgen -source=staleness.go -destination=mocks/mock_staleness.go -package=mocks
type StalenessOracle interface {
	// NeedsCompile reports whether source is newer than output.
	NeedsCompile(source, output string) bool
}
