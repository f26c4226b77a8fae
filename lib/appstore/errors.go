package appstore

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrPageOutOfRange = errors.New("page must be between 1 and 10")
	ErrNotFound       = errors.New("app not found")
	ErrNoToken        = errors.New("could not extract bearer token")
)

// RequestError reports a non-success HTTP status from an upstream
// endpoint.
type RequestError struct {
	StatusCode int
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.URL)
}

// ValidationError reports an upstream payload that did not match the
// shape this library expects. The wrapped error names the offending
// field when the decoder knows it.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s response validation failed: %s", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// requireAny fails with msg unless at least one condition holds.
// Orchestrators use it for "one of" option groups like id/appId.
func requireAny(msg string, present ...bool) error {
	for _, p := range present {
		if p {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMissingField, msg)
}
