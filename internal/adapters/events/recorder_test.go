package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vito/progrock"
	"go.trai.ch/park/internal/adapters/events"
	"go.trai.ch/park/internal/core/domain"
)

func TestRecorder_ResolutionLifecycle(t *testing.T) {
	recorder := events.NewRecorder(progrock.NewTape())
	key := domain.NewRequestKey("film", "maya", nil, nil)

	recorder.ResolutionChanged(domain.ResolutionEvent{
		Key: key, State: domain.StatePending, Generation: 1, At: time.Now(),
	})
	recorder.ResolutionChanged(domain.ResolutionEvent{
		Key:        key,
		State:      domain.StateReady,
		Generation: 1,
		Environment: &domain.ResolvedEnvironment{
			Key: key,
			Packages: []domain.ResolvedPackage{{
				Name:    domain.NewInternedString("maya"),
				Version: domain.NewInternedString("2023.3"),
			}},
		},
		At: time.Now(),
	})

	// A terminal event for an unknown key is ignored, not a panic.
	other := domain.NewRequestKey("games", "godot", nil, nil)
	recorder.ResolutionChanged(domain.ResolutionEvent{
		Key: other, State: domain.StateFailed,
		Failure: domain.NewFailure(other, domain.ErrConflict),
	})

	assert.NoError(t, recorder.Close())
}

func TestRecorder_LaunchLifecycle(t *testing.T) {
	recorder := events.NewRecorder(progrock.NewTape())
	key := domain.NewRequestKey("film", "maya", nil, nil)

	handle := domain.LaunchHandle{ID: 1, ProcessID: 4242, Key: key, Status: domain.LaunchRunning}
	recorder.LaunchChanged(domain.LaunchEvent{Handle: handle, At: time.Now()})

	handle.Status = domain.LaunchExited
	recorder.LaunchChanged(domain.LaunchEvent{Handle: handle, At: time.Now()})

	failed := domain.LaunchHandle{ID: 2, ProcessID: 4243, Key: key, Status: domain.LaunchRunning}
	recorder.LaunchChanged(domain.LaunchEvent{Handle: failed, At: time.Now()})
	failed.Status = domain.LaunchFailed
	failed.Error = "no child processes"
	recorder.LaunchChanged(domain.LaunchEvent{Handle: failed, At: time.Now()})

	assert.NoError(t, recorder.Close())
}
