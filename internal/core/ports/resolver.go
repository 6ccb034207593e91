// Package ports defines the core interfaces of the engine.
package ports

import (
	"context"

	"go.trai.ch/park/internal/core/domain"
)

// ResolverGateway is the synchronous adapter to the external dependency
// resolver. The backend's concrete protocol is opaque; implementations
// validate the backend's response at the boundary and return either a fully
// formed ResolvedEnvironment or an error classifiable by the failure
// taxonomy (domain.FailureKindOf).
//
// Resolve must be safe to invoke concurrently for different keys. The
// scheduler guarantees at most one concurrent invocation per key.
// Implementations do not retry internally; retry policy belongs to the
// scheduler.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ResolverGateway interface {
	Resolve(ctx context.Context, key domain.RequestKey) (*domain.ResolvedEnvironment, error)
}
