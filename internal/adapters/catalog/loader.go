// Package catalog implements the profile/application catalog over a
// directory of YAML profile manifests.
package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.Catalog by reading profile manifests from a
// directory. Files are re-read on every query; the engine's cache, not the
// catalog, is the performance layer.
type Loader struct {
	root string
}

// NewLoader creates a Loader for the given catalog root directory.
func NewLoader(root string) *Loader {
	return &Loader{root: filepath.Clean(root)}
}

// Root returns the catalog directory.
func (l *Loader) Root() string { return l.root }

// Profiles lists all profiles, sorted by name.
func (l *Loader) Profiles() ([]domain.Profile, error) {
	dirEntries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read catalog root"), "root", l.root)
	}

	profiles := make([]domain.Profile, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !isManifest(dirEntry.Name()) {
			continue
		}
		profile, err := l.load(filepath.Join(l.root, dirEntry.Name()))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	slices.SortFunc(profiles, func(a, b domain.Profile) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
	return profiles, nil
}

// Profile returns one profile by name.
func (l *Loader) Profile(name string) (*domain.Profile, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		profile, err := l.load(filepath.Join(l.root, name+ext))
		if err == nil {
			return &profile, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, zerr.With(domain.ErrProfileNotFound, "profile", name)
}

func (l *Loader) load(path string) (domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is under the configured catalog root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Profile{}, err
		}
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to read profile manifest"), "path", path)
	}

	var manifest profileManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to parse profile manifest"), "path", path)
	}

	name := manifest.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	profile := domain.Profile{
		Name:         domain.NewInternedString(name),
		Requests:     manifest.Requests,
		Environment:  manifest.Environment,
		Applications: make(map[string]domain.Application, len(manifest.Applications)),
	}
	for appName, app := range manifest.Applications {
		if len(app.Command) == 0 {
			err := zerr.With(zerr.New("application has no command"), "profile", name)
			return domain.Profile{}, zerr.With(err, "application", appName)
		}
		profile.Applications[appName] = domain.Application{
			Name:        domain.NewInternedString(appName),
			Label:       app.Label,
			Command:     app.Command,
			Requests:    app.Requests,
			Environment: app.Environment,
		}
	}
	return profile, nil
}

func isManifest(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}
