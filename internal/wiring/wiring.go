// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/park/internal/adapters/catalog"
	_ "go.trai.ch/park/internal/adapters/config"
	_ "go.trai.ch/park/internal/adapters/events"
	_ "go.trai.ch/park/internal/adapters/logger"
	_ "go.trai.ch/park/internal/adapters/memcache"
	_ "go.trai.ch/park/internal/adapters/rez"
	_ "go.trai.ch/park/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/park/internal/app"
	_ "go.trai.ch/park/internal/engine/launch"
	_ "go.trai.ch/park/internal/engine/scheduler"
)
