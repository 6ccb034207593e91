package ports

import "go.trai.ch/park/internal/core/domain"

// EventSink receives resolution state transitions and launch status
// changes. It is the presentation layer's subscription point; the engine
// never calls into presentation code directly.
//
// Implementations must not block the publisher: delivery is fire-and-forget
// or buffered, never synchronous on a slow renderer.
//
//go:generate go run go.uber.org/mock/mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventSink interface {
	ResolutionChanged(event domain.ResolutionEvent)
	LaunchChanged(event domain.LaunchEvent)
}
