package launch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/events" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const NodeID graft.ID = "engine.launch"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			events.SinkNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			sink, err := graft.Dep[ports.EventSink](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner, sink, log, settings.InheritEnv), nil
		},
	})
}
