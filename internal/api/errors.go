package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the response classes the board logic branches on.
// Everything else surfaces as a *StatusError.
var (
	// ErrNotFound maps a 404 response. On the per-team task endpoint this
	// means "no tasks yet", not a failure; the aggregator decides.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized maps a 401 response (bad credentials or an
	// expired token).
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is returned for any unexpected non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// statusToError maps a response code to the client's error taxonomy.
// 2xx codes map to nil.
func statusToError(method, path string, code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == 404:
		return ErrNotFound
	case code == 401:
		return ErrUnauthorized
	default:
		return &StatusError{Method: method, Path: path, Code: code}
	}
}
