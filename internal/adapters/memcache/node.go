package memcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const NodeID graft.ID = "adapter.memcache"

func init() {
	graft.Register(graft.Node[ports.ResolutionCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ResolutionCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.CacheTTL), nil
		},
	})
}
