package tidal

import (
	"errors"
	"fmt"
)

// ErrManifestNotFound is returned when a playback info response carries no
// manifest, which TIDAL does when the requested quality is unavailable.
var ErrManifestNotFound = errors.New("manifest not found in playback info")

// ErrMissingField marks a provider response lacking a field the shaper needs.
var ErrMissingField = errors.New("missing field in provider response")

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// UpstreamError represents a failed call to one of the provider endpoints
type UpstreamError struct {
	Endpoint string
	Err      error
}

func (e *UpstreamError) Error() string {
	return "tidal " + e.Endpoint + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
