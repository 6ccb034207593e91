// Package rez implements the resolver gateway against the package
// dependency resolver service's HTTP API.
package rez

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/zerr"
)

const resolvePath = "/api/v1/resolve"

// Gateway implements ports.ResolverGateway. It performs one synchronous
// backend call per Resolve and maps backend errors onto the failure
// taxonomy. It never retries; that policy belongs to the scheduler.
type Gateway struct {
	baseURL string
	client  *http.Client
}

// New creates a Gateway for the resolver service at baseURL.
func New(baseURL string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		// No client-level timeout: the per-attempt budget arrives via ctx.
		client: &http.Client{},
	}
}

// Resolve asks the backend to solve all package requests of key together.
func (g *Gateway) Resolve(ctx context.Context, key domain.RequestKey) (*domain.ResolvedEnvironment, error) {
	body, err := json.Marshal(resolveRequest{
		Profile:     key.Profile(),
		Application: key.Application(),
		Requests:    key.Extras(),
		Overrides:   key.Overrides(),
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode resolve request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+resolvePath, bytes.NewReader(body))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build resolve request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, g.transportError(ctx, key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read resolver response"), "key", key.String())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, g.backendError(key, resp.StatusCode, payload)
	}

	var decoded resolveResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		backendErr := zerr.With(domain.ErrBackendUnavailable, "reason", "malformed response")
		return nil, zerr.With(backendErr, "key", key.String())
	}

	return g.validate(key, decoded)
}

// transportError classifies a failure to complete the HTTP exchange.
func (g *Gateway) transportError(ctx context.Context, key domain.RequestKey, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return zerr.With(domain.ErrResolveTimeout, "key", key.String())
	case errors.Is(err, context.Canceled), ctx.Err() != nil:
		return zerr.With(domain.ErrResolveCancelled, "key", key.String())
	default:
		backendErr := zerr.With(domain.ErrBackendUnavailable, "cause", err.Error())
		return zerr.With(backendErr, "key", key.String())
	}
}

// backendError maps a non-200 response onto the failure taxonomy. The
// backend's own classification wins when present; the HTTP status is the
// fallback.
func (g *Gateway) backendError(key domain.RequestKey, status int, payload []byte) error {
	var failure errorPayload
	_ = json.Unmarshal(payload, &failure)

	var sentinel error
	switch {
	case failure.Code == "conflict" || status == http.StatusConflict:
		sentinel = domain.ErrConflict
	case failure.Code == "not_found" || status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	default:
		sentinel = domain.ErrBackendUnavailable
	}

	err := zerr.With(sentinel, "status", status)
	if failure.Message != "" {
		err = zerr.With(err, "detail", failure.Message)
	}
	return zerr.With(err, "key", key.String())
}

// validate converts the backend payload into a ResolvedEnvironment,
// rejecting incomplete package records at the boundary.
func (g *Gateway) validate(key domain.RequestKey, decoded resolveResponse) (*domain.ResolvedEnvironment, error) {
	packages := make([]domain.ResolvedPackage, 0, len(decoded.Packages))
	for _, pkg := range decoded.Packages {
		if pkg.Name == "" || pkg.Version == "" || pkg.Root == "" {
			backendErr := zerr.With(domain.ErrBackendUnavailable, "reason", "incomplete package record")
			return nil, zerr.With(backendErr, "key", key.String())
		}
		packages = append(packages, domain.ResolvedPackage{
			Name:        domain.NewInternedString(pkg.Name),
			Version:     domain.NewInternedString(pkg.Version),
			InstallPath: pkg.Root,
		})
	}

	env := &domain.ResolvedEnvironment{
		Key:        key,
		Packages:   packages,
		EnvVars:    decoded.Environ,
		ResolvedAt: time.Now(),
	}
	if env.EnvVars == nil {
		env.EnvVars = map[string]string{}
	}
	return env, nil
}
