package domain

import "time"

// ResolutionEvent is published on every state transition of a cache entry:
// Pending when work is dispatched, then Ready or Failed when the attempt
// completes. Transitions of superseded generations are never published.
type ResolutionEvent struct {
	Key        RequestKey
	State      EntryState
	Generation uint64

	// Environment is set when State is StateReady.
	Environment *ResolvedEnvironment

	// Failure is set when State is StateFailed.
	Failure *Failure

	At time.Time
}

// LaunchEvent is published when a launch handle is created or changes
// status.
type LaunchEvent struct {
	Handle LaunchHandle
	At     time.Time
}
