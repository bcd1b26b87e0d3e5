package service

import "errors"

var (
	// ErrSessionExpired is returned when the server rejects the stored
	// credentials and the local session has been cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated is returned by operations that need an active
	// session when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMissingPayload is returned when a successful reply lacks the
	// payload the operation needs.
	ErrMissingPayload = errors.New("reply is missing the expected payload")
)
