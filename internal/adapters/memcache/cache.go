// Package memcache implements the in-memory resolution cache.
package memcache

import (
	"sync"
	"time"

	"go.trai.ch/park/internal/core/domain"
)

// Cache implements ports.ResolutionCache with a map keyed by request
// digest. It is unbounded by count; an optional TTL treats old terminal
// entries as absent on Get. Generations are per key and only ever grow:
// they are tracked separately from the entry values and survive Evict,
// Clear and TTL expiry, so a late write from before a deletion can never
// match a post-deletion generation.
type Cache struct {
	ttl time.Duration

	mu          sync.RWMutex
	entries     map[string]*domain.Entry
	generations map[string]uint64
}

// New creates a Cache. ttl of zero caches outcomes for the session.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:         ttl,
		entries:     make(map[string]*domain.Entry),
		generations: make(map[string]uint64),
	}
}

// Get returns a snapshot of the entry for key, or absent. A terminal entry
// older than the TTL is dropped and reported absent, forcing
// re-resolution.
func (c *Cache) Get(key domain.RequestKey) (*domain.Entry, bool) {
	digest := key.Digest()

	c.mu.RLock()
	entry, ok := c.entries[digest]
	if ok && c.expired(entry) {
		ok = false
	}
	var snapshot domain.Entry
	if ok {
		snapshot = *entry
	}
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		if entry, present := c.entries[digest]; present && c.expired(entry) {
			c.drop(digest)
		}
		c.mu.Unlock()
		return nil, false
	}
	return &snapshot, true
}

// Begin creates or resets the entry for key to Pending under a fresh
// generation and returns that generation.
func (c *Cache) Begin(key domain.RequestKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	digest := key.Digest()
	entry, ok := c.entries[digest]
	if !ok {
		entry = &domain.Entry{Key: key}
		c.entries[digest] = entry
	}
	generation := c.generations[digest] + 1
	c.generations[digest] = generation
	entry.Generation = generation
	entry.State = domain.StatePending
	entry.Environment = nil
	entry.Failure = nil
	entry.UpdatedAt = time.Now()
	return generation
}

// Put stores the outcome if generation is still current; a stale write is
// silently dropped.
func (c *Cache) Put(key domain.RequestKey, outcome domain.Outcome, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	digest := key.Digest()
	entry, ok := c.entries[digest]
	if !ok || c.generations[digest] != generation {
		return false
	}
	entry.State = outcome.State()
	entry.Environment = outcome.Environment
	entry.Failure = outcome.Failure
	entry.UpdatedAt = time.Now()
	return true
}

// Invalidate bumps the generation for key and resets the entry to Pending
// so the next request re-resolves. Absent keys return 0.
func (c *Cache) Invalidate(key domain.RequestKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	digest := key.Digest()
	entry, ok := c.entries[digest]
	if !ok {
		return 0
	}
	generation := c.generations[digest] + 1
	c.generations[digest] = generation
	entry.Generation = generation
	entry.State = domain.StatePending
	entry.Environment = nil
	entry.Failure = nil
	entry.UpdatedAt = time.Now()
	return generation
}

// Evict removes the entry for key. The key's generation is bumped so a
// late write from an attempt begun before the eviction cannot apply.
func (c *Cache) Evict(key domain.RequestKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drop(key.Digest())
}

// Clear removes all entries, bumping each key's generation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for digest := range c.entries {
		c.generations[digest]++
	}
	c.entries = make(map[string]*domain.Entry)
}

// drop deletes one entry and bumps its generation. Caller holds the write
// lock.
func (c *Cache) drop(digest string) {
	if _, ok := c.entries[digest]; !ok {
		return
	}
	c.generations[digest]++
	delete(c.entries, digest)
}

// expired reports whether a terminal entry has outlived the TTL. Pending
// entries never expire; their lifetime is the in-flight attempt's.
func (c *Cache) expired(entry *domain.Entry) bool {
	if c.ttl <= 0 || entry.State == domain.StatePending {
		return false
	}
	return time.Since(entry.UpdatedAt) > c.ttl
}
