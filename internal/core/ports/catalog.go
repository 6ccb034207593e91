package ports

import "go.trai.ch/park/internal/core/domain"

// Catalog is the read-only source of available profiles and applications.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// Profiles lists all profiles, sorted by name.
	Profiles() ([]domain.Profile, error)

	// Profile returns one profile by name, or domain.ErrProfileNotFound.
	Profile(name string) (*domain.Profile, error)
}
