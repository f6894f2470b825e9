package common

import "errors"

var (
	// ErrNotFound is returned when the backend reports a missing resource.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned on 401 responses; callers must clear
	// local session state and re-authenticate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates a transport-level failure, as opposed to
	// an HTTP error response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrBadResponse indicates a response body that was not in the
	// expected format (non-JSON where JSON was required).
	ErrBadResponse = errors.New("unexpected response format")
)
