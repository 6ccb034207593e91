package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/park/internal/core/domain"
)

func TestRequestKey_Digest(t *testing.T) {
	tests := []struct {
		name  string
		a     domain.RequestKey
		b     domain.RequestKey
		equal bool
	}{
		{
			name:  "identical keys",
			a:     domain.NewRequestKey("film", "maya", []string{"gold~2021"}, nil),
			b:     domain.NewRequestKey("film", "maya", []string{"gold~2021"}, nil),
			equal: true,
		},
		{
			name:  "different profile",
			a:     domain.NewRequestKey("film", "maya", nil, nil),
			b:     domain.NewRequestKey("games", "maya", nil, nil),
			equal: false,
		},
		{
			name:  "different application",
			a:     domain.NewRequestKey("film", "maya", nil, nil),
			b:     domain.NewRequestKey("film", "nuke", nil, nil),
			equal: false,
		},
		{
			name:  "extras order is significant",
			a:     domain.NewRequestKey("film", "maya", []string{"a-1", "b-2"}, nil),
			b:     domain.NewRequestKey("film", "maya", []string{"b-2", "a-1"}, nil),
			equal: false,
		},
		{
			name:  "overrides order is not significant",
			a:     domain.NewRequestKey("film", "maya", nil, map[string]string{"A": "1", "B": "2"}),
			b:     domain.NewRequestKey("film", "maya", nil, map[string]string{"B": "2", "A": "1"}),
			equal: true,
		},
		{
			name:  "override value matters",
			a:     domain.NewRequestKey("film", "maya", nil, map[string]string{"A": "1"}),
			b:     domain.NewRequestKey("film", "maya", nil, map[string]string{"A": "2"}),
			equal: false,
		},
		{
			name: "field boundaries do not collide",
			// "ab"+"c" vs "a"+"bc" must hash differently.
			a:     domain.NewRequestKey("ab", "c", nil, nil),
			b:     domain.NewRequestKey("a", "bc", nil, nil),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.equal {
				assert.Equal(t, tt.a.Digest(), tt.b.Digest())
			} else {
				assert.NotEqual(t, tt.a.Digest(), tt.b.Digest())
			}
		})
	}
}

func TestRequestKey_Immutable(t *testing.T) {
	extras := []string{"gold~2021"}
	overrides := map[string]string{"SHOW": "alpha"}
	key := domain.NewRequestKey("film", "maya", extras, overrides)
	digest := key.Digest()

	// Mutating the caller's inputs must not change the key.
	extras[0] = "gold~2022"
	overrides["SHOW"] = "beta"
	assert.Equal(t, digest, key.Digest())
	assert.Equal(t, []string{"gold~2021"}, key.Extras())
	assert.Equal(t, map[string]string{"SHOW": "alpha"}, key.Overrides())

	// Mutating accessor results must not either.
	key.Extras()[0] = "mutated"
	key.Overrides()["SHOW"] = "mutated"
	assert.Equal(t, digest, key.Digest())
	assert.Equal(t, []string{"gold~2021"}, key.Extras())
}

func TestRequestKey_String(t *testing.T) {
	key := domain.NewRequestKey("film", "maya", []string{"gold~2021", "usd-23"}, nil)
	assert.Equal(t, "film/maya+gold~2021+usd-23", key.String())

	bare := domain.NewRequestKey("film", "maya", nil, nil)
	assert.Equal(t, "film/maya", bare.String())
}
