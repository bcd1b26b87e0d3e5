// Package adapter provides the transport layer for communicating with the
// Academy API server.
//
// The primary abstraction is [APIClient], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIClient]) built on resty that manages the bearer token, normalizes
// every response into a [models.Envelope], and transparently refreshes an
// expired token once before failing.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
// [ErrorMessage] converts any of them into the fixed user-facing strings from
// the app package.
package adapter

import (
	"context"
	"net/url"

	"github.com/academyhub/academy-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines transport-agnostic communication with the Academy API
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Pass an empty string to drop the token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// OnTokenRefresh registers a callback invoked with the new token every
	// time a transparent refresh succeeds. The auth service uses it to keep
	// the persisted session in sync with the adapter.
	OnTokenRefresh(fn func(token string))

	// Do performs a single authenticated request. The meaning of data depends
	// on the method: for GET and DELETE it must be nil or url.Values (query
	// parameters), for POST and PUT it is JSON-encoded as the request body.
	//
	// When the server answers 401 and a token is present, Do refreshes the
	// token once and replays the request; if the refresh fails, the original
	// [ErrUnauthorized] is returned. At most two requests hit the network.
	Do(ctx context.Context, method, path string, data any) (models.Envelope, error)

	// Get performs an authenticated GET request with optional query params.
	Get(ctx context.Context, path string, query url.Values) (models.Envelope, error)

	// Post performs an authenticated POST request with a JSON body.
	Post(ctx context.Context, path string, body any) (models.Envelope, error)

	// Put performs an authenticated PUT request with a JSON body.
	Put(ctx context.Context, path string, body any) (models.Envelope, error)

	// Delete performs an authenticated DELETE request.
	Delete(ctx context.Context, path string) (models.Envelope, error)

	// GetRaw performs an authenticated GET request and returns the raw body
	// and its Content-Type without envelope decoding. Used for file
	// downloads, where the payload is not JSON.
	GetRaw(ctx context.Context, path string, query url.Values) ([]byte, string, error)

	// Upload sends a file as a multipart/form-data POST request. Extra form
	// fields from upload.Fields are attached alongside the file part.
	// onProgress, when non-nil, receives monotonically increasing progress
	// events, ending with either a Done event at 100 percent or a single
	// Aborted event.
	Upload(ctx context.Context, path string, upload models.FileUpload, onProgress func(models.UploadProgress)) (models.Envelope, error)

	// Refresh exchanges the current bearer token for a fresh one. On success
	// the new token is stored and the OnTokenRefresh callback fires.
	Refresh(ctx context.Context) error

	// BaseURL returns the resolved API origin the adapter talks to.
	BaseURL() string
}
