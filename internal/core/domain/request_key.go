// Package domain holds the value types of the resolution and launch engine.
package domain

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// RequestKey identifies one resolution unit: a profile, an application
// requested within it, the ordered extra package requests, and any
// environment overrides. It is immutable once constructed; the extras order
// is significant because later requests override earlier ones in the
// resolver.
type RequestKey struct {
	profile     InternedString
	application InternedString
	extras      []string
	overrides   map[string]string
	digest      string
}

// NewRequestKey constructs a RequestKey. The extras slice and overrides map
// are copied so later mutation by the caller cannot change the key.
func NewRequestKey(profile, application string, extras []string, overrides map[string]string) RequestKey {
	k := RequestKey{
		profile:     NewInternedString(profile),
		application: NewInternedString(application),
		extras:      slices.Clone(extras),
	}
	if len(overrides) > 0 {
		k.overrides = make(map[string]string, len(overrides))
		for name, value := range overrides {
			k.overrides[name] = value
		}
	}
	k.digest = k.computeDigest()
	return k
}

// Profile returns the profile identity.
func (k RequestKey) Profile() string { return k.profile.String() }

// Application returns the application identity.
func (k RequestKey) Application() string { return k.application.String() }

// Extras returns a copy of the ordered extra package requests.
func (k RequestKey) Extras() []string { return slices.Clone(k.extras) }

// Overrides returns a copy of the environment overrides.
func (k RequestKey) Overrides() map[string]string {
	if len(k.overrides) == 0 {
		return nil
	}
	out := make(map[string]string, len(k.overrides))
	for name, value := range k.overrides {
		out[name] = value
	}
	return out
}

// Digest returns a stable hash of all key fields. Two keys are equal iff
// their digests are equal: the extras contribute in order, the overrides in
// sorted name order. The digest is the cache address for this key.
func (k RequestKey) Digest() string { return k.digest }

// String renders the key for logs and event output.
func (k RequestKey) String() string {
	s := k.profile.String() + "/" + k.application.String()
	for _, extra := range k.extras {
		s += "+" + extra
	}
	return s
}

func (k RequestKey) computeDigest() string {
	h := xxhash.New()
	writeField := func(s string) {
		_, _ = h.WriteString(s)
		// Separator avoids collisions between adjacent fields.
		_, _ = h.Write([]byte{0})
	}

	writeField(k.profile.String())
	writeField(k.application.String())
	for _, extra := range k.extras {
		writeField(extra)
	}

	names := make([]string, 0, len(k.overrides))
	for name := range k.overrides {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		writeField(name + "=" + k.overrides[name])
	}

	return strconv.FormatUint(h.Sum64(), 16)
}
