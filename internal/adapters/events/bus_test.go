package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/park/internal/adapters/events"
	"go.trai.ch/park/internal/core/domain"
)

func resolutionEvent(state domain.EntryState) domain.ResolutionEvent {
	return domain.ResolutionEvent{
		Key:        domain.NewRequestKey("film", "maya", nil, nil),
		State:      state,
		Generation: 1,
		At:         time.Now(),
	}
}

func TestBus_Delivery(t *testing.T) {
	bus := events.NewBus(4)

	bus.ResolutionChanged(resolutionEvent(domain.StatePending))
	bus.ResolutionChanged(resolutionEvent(domain.StateReady))

	first := <-bus.Resolutions()
	second := <-bus.Resolutions()
	assert.Equal(t, domain.StatePending, first.State)
	assert.Equal(t, domain.StateReady, second.State)

	bus.LaunchChanged(domain.LaunchEvent{
		Handle: domain.LaunchHandle{ID: 1, Status: domain.LaunchRunning},
		At:     time.Now(),
	})
	launch := <-bus.Launches()
	assert.Equal(t, 1, launch.Handle.ID)
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := events.NewBus(1)

	// Publishing past the buffer must not block; the overflow is dropped.
	bus.ResolutionChanged(resolutionEvent(domain.StatePending))
	bus.ResolutionChanged(resolutionEvent(domain.StateReady))

	kept := <-bus.Resolutions()
	assert.Equal(t, domain.StatePending, kept.State)

	select {
	case event := <-bus.Resolutions():
		t.Fatalf("unexpected second event: %v", event.State)
	default:
	}
}

func TestFanout(t *testing.T) {
	first := events.NewBus(4)
	second := events.NewBus(4)
	fanout := events.Fanout{first, second}

	fanout.ResolutionChanged(resolutionEvent(domain.StateReady))

	require.Equal(t, domain.StateReady, (<-first.Resolutions()).State)
	require.Equal(t, domain.StateReady, (<-second.Resolutions()).State)
}
