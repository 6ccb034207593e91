package rez

// Wire types for the resolver service. The backend payload is treated as
// untyped data; gateway.go validates it and converts to domain types before
// anything crosses into the engine.

type resolveRequest struct {
	Profile     string            `json:"profile"`
	Application string            `json:"application"`
	Requests    []string          `json:"requests"`
	Overrides   map[string]string `json:"overrides,omitempty"`
}

type resolveResponse struct {
	Packages []packagePayload  `json:"packages"`
	Environ  map[string]string `json:"environ"`
}

type packagePayload struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Root    string `json:"root"`
}

// errorPayload is the backend's failure shape. Code carries the backend's
// own classification ("conflict", "not_found", ...); Message is free text.
type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
