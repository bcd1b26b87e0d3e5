package adapter

import "errors"

// Sentinel errors returned by the HTTP adapter. mapHTTPError wraps them with
// the server's response body so callers can both classify via [errors.Is] and
// inspect the raw detail.
var (
	// ErrTransport indicates the request never produced an HTTP response
	// (DNS failure, refused connection, timeout).
	ErrTransport = errors.New("network request failed")
	// ErrBadRequest corresponds to HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized corresponds to HTTP 401.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden corresponds to HTTP 403.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound corresponds to HTTP 404.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict corresponds to HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrServer corresponds to any HTTP 5xx status.
	ErrServer = errors.New("server error")
	// ErrMalformedResponse indicates a 2xx response whose body could not be
	// decoded as the expected JSON envelope.
	ErrMalformedResponse = errors.New("malformed server response")
)
