package ports

import (
	"context"

	"go.trai.ch/piff/internal/core/domain"
)

// Transpiler is the boundary to the external transpile and format collaborator.
// Both operations fail with a *domain.SyntaxError on malformed input.
//
//go:generate mockgen -source=transpiler.go -destination=mocks/mock_transpiler.go -package=mocks
type Transpiler interface {
	// Transpile converts source text into target-language text.
	Transpile(ctx context.Context, src string) (string, error)
	// Format returns the canonical formatting of source text.
	Format(ctx context.Context, src string) (string, error)
}

// TranspilerFactory builds a Transpiler for the loaded project settings.
type TranspilerFactory interface {
	NewTranspiler(settings domain.Settings) (Transpiler, error)
}
