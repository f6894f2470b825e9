package api

import (
	"fmt"
	"net/http"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
)

// StatusError is an HTTP error response from the backend, carrying the
// decoded detail payload. It matches the common sentinels through
// errors.Is so callers can branch on 401/404/malformed-body without
// inspecting status codes themselves.
type StatusError struct {
	StatusCode int
	Detail     Detail

	// Malformed is set when the response body was not valid JSON of
	// the expected error envelope.
	Malformed bool
}

func (e *StatusError) Error() string {
	if msg := e.Detail.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case common.ErrBadResponse:
		return e.Malformed
	}
	return false
}

// newStatusError builds a StatusError from a non-2xx response body.
func newStatusError(statusCode int, body []byte) *StatusError {
	detail, ok := ParseErrorBody(body)
	return &StatusError{StatusCode: statusCode, Detail: detail, Malformed: !ok}
}
