package domain

import "go.trai.ch/zerr"

var (
	// ErrConflict is returned when the resolver cannot satisfy all package
	// requests together (conflicting version constraints).
	ErrConflict = zerr.New("conflicting package requests")

	// ErrNotFound is returned when a requested package is not present in the catalog.
	ErrNotFound = zerr.New("package not found")

	// ErrBackendUnavailable is returned when the resolver backend cannot be reached
	// or fails for reasons unrelated to the request itself.
	ErrBackendUnavailable = zerr.New("resolver backend unavailable")

	// ErrResolveTimeout is returned when a resolution attempt exceeds its time budget.
	ErrResolveTimeout = zerr.New("resolution timed out")

	// ErrResolveCancelled is returned when a resolution attempt was cancelled or superseded.
	ErrResolveCancelled = zerr.New("resolution cancelled")

	// ErrSpawnFailed is returned when the target application process could not be started.
	ErrSpawnFailed = zerr.New("process spawn failed")

	// ErrInvalidCommand is returned when a launch is requested with an empty or malformed command.
	ErrInvalidCommand = zerr.New("invalid launch command")

	// ErrProfileNotFound is returned when a requested profile is not in the catalog.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrApplicationNotFound is returned when a profile does not expose the requested application.
	ErrApplicationNotFound = zerr.New("application not found")
)
