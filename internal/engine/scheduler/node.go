package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/events"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/memcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/adapters/rez"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rez.NodeID,
			memcache.NodeID,
			events.SinkNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			gateway, err := graft.Dep[ports.ResolverGateway](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ResolutionCache](ctx)
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
			return New(gateway, cache, sink, log, Options{
				Timeout:     settings.ResolveTimeout,
				Retries:     settings.Retries,
				Backoff:     settings.Backoff,
				Parallelism: settings.Parallelism,
			}), nil
		},
	})
}
