package app

import (
	"go.trai.ch/park/internal/adapters/events" //nolint:depguard // Wired in app layer
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

// Components bundles the fully wired application with the collaborators the
// command layer needs direct access to.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
	Bus      *events.Bus
	Watcher  ports.CatalogWatcher
}
