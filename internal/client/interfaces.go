package client

import "context"

// Client defines the minimal lifecycle contract for the client application
// runtime.
type Client interface {
	// Start brings the client up: it restores a persisted session when one
	// exists and launches the background workers.
	Start(ctx context.Context) error

	// Stop shuts the background workers down and blocks until they exit.
	Stop()
}
