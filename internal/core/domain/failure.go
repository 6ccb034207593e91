package domain

import (
	"context"
	"errors"
	"time"
)

// FailureKind classifies why a resolution failed.
type FailureKind string

const (
	// KindConflict indicates conflicting version constraints. Terminal for
	// the key until an explicit invalidation.
	KindConflict FailureKind = "Conflict"
	// KindNotFound indicates a requested package is absent from the catalog.
	// Terminal until an explicit invalidation.
	KindNotFound FailureKind = "NotFound"
	// KindBackendUnavailable indicates a network, database or backend error.
	KindBackendUnavailable FailureKind = "BackendUnavailable"
	// KindTimeout indicates the attempt exceeded its time budget.
	KindTimeout FailureKind = "Timeout"
	// KindCancelled indicates the attempt was cancelled or superseded.
	KindCancelled FailureKind = "Cancelled"
)

// Transient reports whether a failure of this kind may be retried
// automatically. Conflict and NotFound only clear after the inputs change;
// Cancelled is never retried.
func (k FailureKind) Transient() bool {
	return k == KindBackendUnavailable || k == KindTimeout
}

// Failure records a failed resolution for a RequestKey.
type Failure struct {
	Key      RequestKey
	Kind     FailureKind
	Message  string
	FailedAt time.Time
}

// Error implements the error interface so a Failure can travel as an error.
func (f *Failure) Error() string {
	return string(f.Kind) + ": " + f.Message
}

// FailureKindOf maps an error onto the failure taxonomy. Unrecognized
// errors count as backend failures: the backend is the only collaborator
// that can produce errors outside the taxonomy.
func FailureKindOf(err error) FailureKind {
	switch {
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrResolveTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, ErrResolveCancelled), errors.Is(err, context.Canceled):
		return KindCancelled
	default:
		return KindBackendUnavailable
	}
}

// NewFailure builds a Failure for key from err, classifying it on the way.
func NewFailure(key RequestKey, err error) *Failure {
	return &Failure{
		Key:      key,
		Kind:     FailureKindOf(err),
		Message:  err.Error(),
		FailedAt: time.Now(),
	}
}
