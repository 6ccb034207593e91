package domain

import "go.trai.ch/zerr"

// Application is a launchable tool exposed by a profile.
type Application struct {
	// Name is the application identity within its profile.
	Name InternedString

	// Label is a human-readable display name.
	Label string

	// Command is the argv used to start the application inside its
	// resolved environment.
	Command []string

	// Requests are the application's own package requests, resolved after
	// the profile's requests.
	Requests []string

	// Environment are application-level environment overrides.
	Environment map[string]string
}

// Profile is a named production context selecting which applications and
// package sets are relevant.
type Profile struct {
	Name InternedString

	// Requests are the profile-wide package requests shared by every
	// application in the profile.
	Requests []string

	// Environment are profile-level environment overrides.
	Environment map[string]string

	Applications map[string]Application
}

// Application looks up an application by name.
func (p *Profile) Application(name string) (Application, error) {
	app, ok := p.Applications[name]
	if !ok {
		err := zerr.With(ErrApplicationNotFound, "profile", p.Name.String())
		return Application{}, zerr.With(err, "application", name)
	}
	return app, nil
}

// KeyFor builds the RequestKey for launching an application of this profile
// with the given extra requests. Request order is profile requests, then
// application requests, then extras; later requests override earlier ones
// in the resolver. Application environment overrides win over profile ones.
func (p *Profile) KeyFor(application string, extras []string) (RequestKey, error) {
	app, err := p.Application(application)
	if err != nil {
		return RequestKey{}, err
	}

	requests := make([]string, 0, len(p.Requests)+len(app.Requests)+len(extras))
	requests = append(requests, p.Requests...)
	requests = append(requests, app.Requests...)
	requests = append(requests, extras...)

	overrides := make(map[string]string, len(p.Environment)+len(app.Environment))
	for name, value := range p.Environment {
		overrides[name] = value
	}
	for name, value := range app.Environment {
		overrides[name] = value
	}

	return NewRequestKey(p.Name.String(), application, requests, overrides), nil
}
