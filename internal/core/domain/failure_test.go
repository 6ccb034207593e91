package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFailureKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.FailureKind
	}{
		{"conflict", domain.ErrConflict, domain.KindConflict},
		{"wrapped conflict", zerr.Wrap(domain.ErrConflict, "resolve failed"), domain.KindConflict},
		{"not found", domain.ErrNotFound, domain.KindNotFound},
		{"timeout", domain.ErrResolveTimeout, domain.KindTimeout},
		{"context deadline", context.DeadlineExceeded, domain.KindTimeout},
		{"cancelled", domain.ErrResolveCancelled, domain.KindCancelled},
		{"context cancel", context.Canceled, domain.KindCancelled},
		{"backend", domain.ErrBackendUnavailable, domain.KindBackendUnavailable},
		{"unknown error", errors.New("boom"), domain.KindBackendUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, domain.FailureKindOf(tt.err))
		})
	}
}

func TestFailureKind_Transient(t *testing.T) {
	assert.True(t, domain.KindBackendUnavailable.Transient())
	assert.True(t, domain.KindTimeout.Transient())
	assert.False(t, domain.KindConflict.Transient())
	assert.False(t, domain.KindNotFound.Transient())
	assert.False(t, domain.KindCancelled.Transient())
}

func TestNewFailure(t *testing.T) {
	key := domain.NewRequestKey("film", "maya", nil, nil)
	failure := domain.NewFailure(key, zerr.Wrap(domain.ErrConflict, "gold-1 vs gold-2"))

	assert.Equal(t, key.Digest(), failure.Key.Digest())
	assert.Equal(t, domain.KindConflict, failure.Kind)
	assert.Contains(t, failure.Message, "gold-1 vs gold-2")
	assert.False(t, failure.FailedAt.IsZero())
	assert.Contains(t, failure.Error(), "Conflict")
}
