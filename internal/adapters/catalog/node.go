package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/park/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const (
	NodeID        graft.ID = "adapter.catalog"
	WatcherNodeID graft.ID = "adapter.catalog.watcher"
)

func init() {
	graft.Register(graft.Node[ports.Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Catalog, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(settings.CatalogRoot), nil
		},
	})

	graft.Register(graft.Node[ports.CatalogWatcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogWatcher, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(settings.CatalogRoot, log)
		},
	})
}
