package ports

import "go.trai.ch/park/internal/core/domain"

// ConfigLoader loads the engine settings.
type ConfigLoader interface {
	// Load reads the settings file at path. A missing file yields the
	// defaults rather than an error.
	Load(path string) (domain.Settings, error)
}
