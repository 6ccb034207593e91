package domain

import "time"

// ResolvedPackage is one version-pinned package in a resolved environment.
type ResolvedPackage struct {
	// Name is the canonical package name (e.g., "maya").
	Name InternedString

	// Version is the resolved version string (e.g., "2022").
	Version InternedString

	// InstallPath is the package's install root on disk.
	InstallPath string
}

// ResolvedEnvironment is the concrete, fully version-pinned environment the
// resolver produced for a RequestKey. It is owned by the cache entry that
// produced it and shared read-only; a changed input yields a new environment
// under a new key, never a mutation of this one.
type ResolvedEnvironment struct {
	// Key is the request this environment was resolved for.
	Key RequestKey

	// Packages is the resolver's authoritative dependency order.
	// Consumers must not reorder it.
	Packages []ResolvedPackage

	// EnvVars are the environment variables the packages contribute.
	EnvVars map[string]string

	// ResolvedAt is when the resolver produced this environment.
	ResolvedAt time.Time
}
