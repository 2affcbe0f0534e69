package fs

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// globMeta holds the characters that make a pattern a glob expression.
const globMeta = "*?[{"

// Resolver implements the PathResolver interface using doublestar globs.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Patterns rewrites directory patterns into recursive source globs and checks
// that literal paths exist. Glob expressions are passed through unchanged.
func (r *Resolver) Patterns(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		info, err := os.Stat(p)
		switch {
		case err == nil && info.IsDir():
			out = append(out, strings.TrimRight(p, "/")+"/**/*"+domain.SourceExt)
		case err == nil:
			out = append(out, p)
		case strings.ContainsAny(p, globMeta):
			if !doublestar.ValidatePathPattern(p) {
				return nil, zerr.With(domain.ErrInvalidPattern, "pattern", p)
			}
			out = append(out, p)
		default:
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPatternNotFound.Error()), "path", p)
		}
	}
	return out, nil
}

// Resolve expands the given patterns into a flat list of files. Results keep
// the order of the patterns; a path matched by more than one pattern is only
// listed the first time.
func (r *Resolver) Resolve(patterns []string) ([]string, error) {
	rewritten, err := r.Patterns(patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	for _, p := range rewritten {
		matches := []string{p}
		if _, statErr := os.Stat(p); statErr != nil {
			matches, err = doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", p)
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	return files, nil
}
