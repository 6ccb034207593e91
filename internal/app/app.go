// Package app implements the application layer for park.
package app

import (
	"context"
	"sort"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/park/internal/engine/launch"
	"go.trai.ch/park/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic: catalog queries, resolution
// requests and application launches.
type App struct {
	catalog   ports.Catalog
	scheduler *scheduler.Scheduler
	launcher  *launch.Manager
	logger    ports.Logger
}

// New creates a new App instance.
func New(catalog ports.Catalog, sched *scheduler.Scheduler, launcher *launch.Manager, logger ports.Logger) *App {
	return &App{
		catalog:   catalog,
		scheduler: sched,
		launcher:  launcher,
		logger:    logger,
	}
}

// Profiles lists the catalog's profiles, sorted by name.
func (a *App) Profiles() ([]domain.Profile, error) {
	profiles, err := a.catalog.Profiles()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list profiles")
	}
	return profiles, nil
}

// Applications lists the applications of one profile.
func (a *App) Applications(profile string) ([]domain.Application, error) {
	p, err := a.catalog.Profile(profile)
	if err != nil {
		return nil, err
	}

	apps := make([]domain.Application, 0, len(p.Applications))
	for _, app := range p.Applications {
		apps = append(apps, app)
	}
	sortApplications(apps)
	return apps, nil
}

// Resolve requests the environment for (profile, application, extras) and
// waits for the outcome. Identical concurrent calls share one resolver
// attempt; fresh cached outcomes return without a resolver call at all.
func (a *App) Resolve(ctx context.Context, profile, application string, extras []string) (*domain.ResolvedEnvironment, error) {
	key, err := a.key(profile, application, extras)
	if err != nil {
		return nil, err
	}

	sub := a.scheduler.Request(ctx, key)
	select {
	case outcome := <-sub.Outcome():
		if !outcome.Ok() {
			return nil, outcome.Failure
		}
		return outcome.Environment, nil
	case <-ctx.Done():
		return nil, zerr.Wrap(ctx.Err(), "resolve interrupted")
	}
}

// Launch resolves the environment for (profile, application, extras) and
// starts the application's command inside it.
func (a *App) Launch(ctx context.Context, profile, application string, extras []string) (domain.LaunchHandle, error) {
	p, err := a.catalog.Profile(profile)
	if err != nil {
		return domain.LaunchHandle{}, err
	}
	target, err := p.Application(application)
	if err != nil {
		return domain.LaunchHandle{}, err
	}

	env, err := a.Resolve(ctx, profile, application, extras)
	if err != nil {
		return domain.LaunchHandle{}, err
	}

	handle, err := a.launcher.Launch(ctx, env, target.Command)
	if err != nil {
		return domain.LaunchHandle{}, zerr.Wrap(err, "failed to launch application")
	}
	return handle, nil
}

// Invalidate marks the cached entry for (profile, application, extras) as
// stale. The next Resolve dispatches a fresh resolver call.
func (a *App) Invalidate(profile, application string, extras []string) error {
	key, err := a.key(profile, application, extras)
	if err != nil {
		return err
	}
	a.scheduler.Invalidate(key)
	return nil
}

// Cancel aborts any in-flight resolution for (profile, application, extras).
func (a *App) Cancel(profile, application string, extras []string) error {
	key, err := a.key(profile, application, extras)
	if err != nil {
		return err
	}
	a.scheduler.Cancel(key)
	return nil
}

// Launches returns snapshots of all launches so far, oldest first.
func (a *App) Launches() []domain.LaunchHandle {
	return a.launcher.Handles()
}

// LaunchHandle returns the current snapshot of one launch by id.
func (a *App) LaunchHandle(id int) (domain.LaunchHandle, bool) {
	return a.launcher.Handle(id)
}

// WatchCatalog consumes change signals from the watcher and resets the
// resolution cache, so future requests resolve against the edited catalog.
// It blocks until ctx is done.
func (a *App) WatchCatalog(ctx context.Context, watcher ports.CatalogWatcher) error {
	if err := watcher.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start catalog watcher")
	}
	defer watcher.Stop() //nolint:errcheck // Best-effort cleanup on shutdown

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Changes():
			if !ok {
				return nil
			}
			a.logger.Info("catalog changed, resetting resolution cache")
			a.scheduler.Reset()
		}
	}
}

// Wait blocks until all background resolution and launch-watch work has
// finished. Call after cancelling the root context.
func (a *App) Wait() {
	a.scheduler.Wait()
	a.launcher.Wait()
}

func sortApplications(apps []domain.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name.String() < apps[j].Name.String()
	})
}

func (a *App) key(profile, application string, extras []string) (domain.RequestKey, error) {
	p, err := a.catalog.Profile(profile)
	if err != nil {
		return domain.RequestKey{}, err
	}
	return p.KeyFor(application, extras)
}
