package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by [SessionRepository.Load] when no
	// usable session is stored locally, including the partial and corrupt
	// cases that Load cleans up on the way out.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it ever reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
