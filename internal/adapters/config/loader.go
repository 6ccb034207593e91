// Package config provides the park.yaml settings loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML settings files.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads settings from path. A missing file yields the defaults; set
// fields override them individually.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file parkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	if file.Resolver.URL != "" {
		settings.ResolverURL = file.Resolver.URL
	}
	if err := applyDuration(&settings.ResolveTimeout, file.Resolver.Timeout, "resolver.timeout"); err != nil {
		return domain.Settings{}, err
	}
	if file.Resolver.Retries != nil {
		settings.Retries = *file.Resolver.Retries
	}
	if err := applyDuration(&settings.Backoff, file.Resolver.Backoff, "resolver.backoff"); err != nil {
		return domain.Settings{}, err
	}
	if file.Resolver.Parallelism > 0 {
		settings.Parallelism = file.Resolver.Parallelism
	}
	if err := applyDuration(&settings.CacheTTL, file.Cache.TTL, "cache.ttl"); err != nil {
		return domain.Settings{}, err
	}
	if file.Catalog.Root != "" {
		settings.CatalogRoot = file.Catalog.Root
	}
	if file.Launch.Inherit != nil {
		settings.InheritEnv = file.Launch.Inherit
	}

	return settings, nil
}

func applyDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid duration"), "field", field)
	}
	*dst = parsed
	return nil
}
