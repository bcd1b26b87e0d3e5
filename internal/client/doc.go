// Package client implements the client application runtime.
//
// It wires the client services, request validation, and background session
// keepalive into a single lifecycle: Start restores a persisted session and
// launches the workers, Stop tears them down. The auth entry points on App
// validate their input locally before any network call, so requests that
// cannot possibly succeed are answered without a round trip.
package client
