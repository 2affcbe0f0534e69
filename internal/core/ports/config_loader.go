package ports

import "go.trai.ch/piff/internal/core/domain"

// ConfigLoader defines the interface for loading project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads piff.yaml from cwd or its nearest ancestor, applies the
	// environment overrides and returns the resulting settings.
	Load(cwd string) (domain.Settings, error)
}
