package domain

import "time"

// EntryState is the resolution state of a cache entry.
type EntryState string

const (
	// StatePending indicates resolution work is dispatched but not finished.
	StatePending EntryState = "Pending"
	// StateReady indicates the entry holds a resolved environment.
	StateReady EntryState = "Ready"
	// StateFailed indicates the entry holds a resolution failure.
	StateFailed EntryState = "Failed"
)

// Outcome is the final result of one resolution attempt: exactly one of
// Environment or Failure is set.
type Outcome struct {
	Environment *ResolvedEnvironment
	Failure     *Failure
}

// Ok reports whether the outcome is a successful resolution.
func (o Outcome) Ok() bool { return o.Environment != nil }

// State returns the terminal entry state this outcome produces.
func (o Outcome) State() EntryState {
	if o.Ok() {
		return StateReady
	}
	return StateFailed
}

// Entry is the cache's record for one RequestKey. There is at most one
// entry per key; a Pending entry carries no value. Generation increments on
// every invalidation of the key so that late results from superseded
// attempts can be detected and discarded.
type Entry struct {
	Key         RequestKey
	State       EntryState
	Environment *ResolvedEnvironment
	Failure     *Failure
	Generation  uint64
	UpdatedAt   time.Time
}

// Outcome returns the entry's value as an Outcome. Only meaningful for
// Ready or Failed entries.
func (e *Entry) Outcome() Outcome {
	return Outcome{Environment: e.Environment, Failure: e.Failure}
}
