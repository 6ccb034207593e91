package catalog

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/park/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogWatcher = (*Watcher)(nil)

// Watcher signals when anything under the catalog root changes. Raw file
// events are coalesced into a single pending signal: consumers that react
// by clearing the resolution cache gain nothing from seeing every write.
type Watcher struct {
	root      string
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	logger    ports.Logger
}

// NewWatcher creates a Watcher for the given catalog root.
func NewWatcher(root string, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create catalog watcher")
	}
	return &Watcher{
		root:      root,
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		logger:    logger,
	}, nil
}

// Start begins watching the catalog root. Profile manifests live flat in
// the root, so the watch is not recursive.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(w.root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch catalog root"), "root", w.root)
	}
	go w.process(ctx)
	return nil
}

// Changes returns the coalesced change signal channel.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Stop releases watch resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) process(ctx context.Context) {
	defer close(w.changes)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !isManifest(event.Name) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
				// A signal is already pending; coalesce.
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "catalog watch error"))
		}
	}
}
