package events

import (
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

var _ ports.EventSink = (Fanout)(nil)

// Fanout forwards every event to each sink in order. Each sink carries its
// own non-blocking guarantee; Fanout adds none.
type Fanout []ports.EventSink

// ResolutionChanged implements ports.EventSink.
func (f Fanout) ResolutionChanged(event domain.ResolutionEvent) {
	for _, sink := range f {
		sink.ResolutionChanged(event)
	}
}

// LaunchChanged implements ports.EventSink.
func (f Fanout) LaunchChanged(event domain.LaunchEvent) {
	for _, sink := range f {
		sink.LaunchChanged(event)
	}
}
