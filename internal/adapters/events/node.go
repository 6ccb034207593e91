package events

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/vito/progrock"
	"go.trai.ch/park/internal/core/ports"
)

const (
	BusNodeID  graft.ID = "adapter.events.bus"
	SinkNodeID graft.ID = "adapter.events.sink"
)

func init() {
	graft.Register(graft.Node[*Bus]{
		ID:        BusNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Bus, error) {
			return NewBus(defaultBuffer), nil
		},
	})

	graft.Register(graft.Node[ports.EventSink]{
		ID:        SinkNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BusNodeID},
		Run: func(ctx context.Context) (ports.EventSink, error) {
			bus, err := graft.Dep[*Bus](ctx)
			if err != nil {
				return nil, err
			}
			return Fanout{bus, NewRecorder(progrock.NewTape())}, nil
		},
	})
}
