package store

import (
	"context"

	"github.com/academyhub/academy-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository persists the authenticated session across client restarts.
// It stores the user record, the bearer token, and the remember-me flag as
// individual keys in the local SQLite database.
type SessionRepository interface {
	// Save persists the whole session, replacing whatever was stored before.
	Save(ctx context.Context, session models.Session) error

	// SaveToken overwrites only the stored bearer token, keeping the user
	// record and remember-me flag intact. Used after a transparent refresh.
	SaveToken(ctx context.Context, token string) error

	// Load restores the persisted session. If the session is absent, partial,
	// or cannot be decoded, the stored state is cleared and
	// [ErrLocalSessionNotFound] is returned.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes every persisted session key. It is safe to call when no
	// session is stored.
	Clear(ctx context.Context) error
}
