package ports

import "go.trai.ch/park/internal/core/domain"

// ResolutionCache maps RequestKeys to resolution entries. It is shared
// state read by many callers; implementations must be safe for concurrent
// use. Per key the generation counter is monotonically non-decreasing and
// writes only apply when the caller's generation is current, so a late
// result from a superseded attempt can never regress the entry.
type ResolutionCache interface {
	// Get returns the entry for key, or absent. An entry older than the
	// cache's TTL is treated as absent.
	Get(key domain.RequestKey) (*domain.Entry, bool)

	// Begin creates or resets the entry for key to Pending under a fresh
	// generation and returns that generation.
	Begin(key domain.RequestKey) uint64

	// Put stores the outcome if generation matches the entry's current
	// generation. It reports whether the write applied; a stale write is
	// silently dropped.
	Put(key domain.RequestKey, outcome domain.Outcome, generation uint64) bool

	// Invalidate bumps the entry's generation and marks it for
	// re-resolution, returning the new generation. Absent keys return 0.
	Invalidate(key domain.RequestKey) uint64

	// Evict removes the entry for key.
	Evict(key domain.RequestKey)

	// Clear removes all entries; used when the catalog changes.
	Clear()
}
