// Package events provides the event sink implementations: a buffered bus
// for programmatic consumers and a progrock recorder for terminal
// rendering.
package events

import (
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const defaultBuffer = 64

var _ ports.EventSink = (*Bus)(nil)

// Bus is a buffered event sink. Publishing never blocks: when a consumer
// falls behind and the buffer fills, events are dropped. The engine's
// correctness never depends on event delivery; the cache is the source of
// truth.
type Bus struct {
	resolutions chan domain.ResolutionEvent
	launches    chan domain.LaunchEvent
}

// NewBus creates a Bus with the given channel buffer size; zero or negative
// uses the default.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		resolutions: make(chan domain.ResolutionEvent, buffer),
		launches:    make(chan domain.LaunchEvent, buffer),
	}
}

// ResolutionChanged implements ports.EventSink.
func (b *Bus) ResolutionChanged(event domain.ResolutionEvent) {
	select {
	case b.resolutions <- event:
	default:
	}
}

// LaunchChanged implements ports.EventSink.
func (b *Bus) LaunchChanged(event domain.LaunchEvent) {
	select {
	case b.launches <- event:
	default:
	}
}

// Resolutions returns the resolution event stream.
func (b *Bus) Resolutions() <-chan domain.ResolutionEvent {
	return b.resolutions
}

// Launches returns the launch event stream.
func (b *Bus) Launches() <-chan domain.LaunchEvent {
	return b.launches
}
