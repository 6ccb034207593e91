package ports

import "context"

// CatalogWatcher observes the catalog source and signals when it changes.
// Changes are coalesced; a signal means "something changed since you last
// looked", not one signal per file event.
type CatalogWatcher interface {
	// Start begins watching. It returns once watching is established;
	// signals are delivered until ctx is done or Stop is called.
	Start(ctx context.Context) error

	// Changes returns the signal channel.
	Changes() <-chan struct{}

	// Stop releases watch resources.
	Stop() error
}
