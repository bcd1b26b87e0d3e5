// Package app contains shared application-layer constants used across the
// Academy client services and transport adapter.
//
// All Msg* constants are the fixed human-readable strings surfaced to users
// through the response envelope's message field. Keeping them in one place
// ensures consistent wording throughout the client.
package app

const (
	// MsgAuthRequired is surfaced when a request is rejected with HTTP 401
	// and the refresh-and-retry protocol could not recover the session.
	MsgAuthRequired = "Authentication required"

	// MsgAccessDenied is surfaced when the backend rejects a request with
	// HTTP 403 because the authenticated role lacks the needed permission.
	MsgAccessDenied = "Access denied"

	// MsgNotFound is surfaced when the requested entity does not exist
	// (HTTP 404).
	MsgNotFound = "Resource not found"

	// MsgServerError is surfaced for any HTTP 5xx reply.
	MsgServerError = "Server error"

	// MsgInvalidResponse is surfaced when a reply body cannot be decoded as
	// JSON.
	MsgInvalidResponse = "Invalid response format"

	// MsgNetworkError is surfaced when the request never produced an HTTP
	// reply (connection refused, DNS failure, abort).
	MsgNetworkError = "Network error"

	// MsgSessionExpired is surfaced by the auth-error handler when the
	// session has been torn down and the user must log in again.
	MsgSessionExpired = "Session expired, please log in again"
)
