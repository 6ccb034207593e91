package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

const (
	NodeID         graft.ID = "adapter.config_loader"
	SettingsNodeID graft.ID = "adapter.config.settings"
)

// defaultPath is the settings file looked up in the working directory.
// PARK_CONFIG overrides it.
const defaultPath = "park.yaml"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			path := defaultPath
			if override := os.Getenv("PARK_CONFIG"); override != "" {
				path = override
			}
			return loader.Load(path)
		},
	})
}
