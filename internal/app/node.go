package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/park/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/park/internal/adapters/events"  //nolint:depguard // Wired in app layer
	"go.trai.ch/park/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/park/internal/engine/launch"
	"go.trai.ch/park/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			scheduler.NodeID,
			launch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cat, err := graft.Dep[ports.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			launcher, err := graft.Dep[*launch.Manager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cat, sched, launcher, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
			events.BusNodeID,
			catalog.WatcherNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
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

	bus, err := graft.Dep[*events.Bus](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := graft.Dep[ports.CatalogWatcher](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Settings: settings,
		Bus:      bus,
		Watcher:  watcher,
	}, nil
}
