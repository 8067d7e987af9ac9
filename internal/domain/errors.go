package domain

import "errors"

// Pipeline error taxonomy. All of these are non-fatal: every tier converts
// its own failures into "no result" and the run continues.
var (
	// ErrRegistryUnavailable reports a missing registry directory. Treated
	// as an empty registry so the advisory tier can still run.
	ErrRegistryUnavailable = errors.New("registry directory unavailable")

	// ErrBackendUnavailable reports an unreachable or unconfigured model or
	// advisory service.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrMalformedResponse reports an unexpected response shape from the
	// model or advisory service.
	ErrMalformedResponse = errors.New("malformed backend response")
)
