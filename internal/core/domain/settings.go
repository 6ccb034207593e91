package domain

import "time"

// Settings is the engine configuration loaded from park.yaml.
type Settings struct {
	// ResolverURL is the base URL of the dependency-resolver service.
	ResolverURL string

	// ResolveTimeout is the wall-clock budget for one resolution attempt.
	ResolveTimeout time.Duration

	// Retries bounds automatic retries for transient resolution failures.
	Retries int

	// Backoff is the delay between retries.
	Backoff time.Duration

	// Parallelism bounds concurrent resolver calls across distinct keys.
	Parallelism int

	// CacheTTL expires cached outcomes; zero caches for the session.
	CacheTTL time.Duration

	// CatalogRoot is the directory holding profile manifests.
	CatalogRoot string

	// InheritEnv names the launcher environment variables passed through to
	// launched applications. Everything else is withheld.
	InheritEnv []string
}

// DefaultSettings returns the settings used when park.yaml is absent or
// leaves fields unset.
func DefaultSettings() Settings {
	return Settings{
		ResolverURL:    "http://127.0.0.1:8521",
		ResolveTimeout: 30 * time.Second,
		Retries:        2,
		Backoff:        500 * time.Millisecond,
		Parallelism:    4,
		CatalogRoot:    "profiles",
		InheritEnv: []string{
			"PATH", "HOME", "USER", "LOGNAME", "SHELL", "TERM",
			"TMPDIR", "DISPLAY", "LANG", "TZ",
		},
	}
}
