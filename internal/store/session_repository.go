package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
)

// Fixed keys of the session_state table.
const (
	keyUser       = "user"
	keyToken      = "token"
	keyRememberMe = "rememberMe"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
	sq     sq.StatementBuilderType
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		sq:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin session save: %w", err)
	}
	defer tx.Rollback()

	entries := []struct{ key, value string }{
		{keyUser, string(userJSON)},
		{keyToken, session.Token},
	}
	for _, e := range entries {
		if err = s.upsert(ctx, tx, e.key, e.value); err != nil {
			log.Err(err).Str("func", "sessionRepository.Save").Str("key", e.key).Msg("failed to persist session key")
			return err
		}
	}

	// rememberMe is a presence flag: stored as "true" when set, absent
	// otherwise. Saving with the flag off removes any stale row.
	if session.RememberMe {
		err = s.upsert(ctx, tx, keyRememberMe, "true")
	} else {
		err = s.deleteKey(ctx, tx, keyRememberMe)
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Str("key", keyRememberMe).Msg("failed to persist session key")
		return err
	}

	return tx.Commit()
}

func (s *sessionRepository) SaveToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := s.upsert(ctx, s.DB, keyToken, token); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveToken").Msg("failed to persist refreshed token")
		return err
	}

	return nil
}

func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.sq.Select("key", "value").
		From("session_state").
		Where(sq.Eq{"key": []string{keyUser, keyToken, keyRememberMe}}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to query session state")
		return models.Session{}, fmt.Errorf("failed to query session state: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to scan session row")
			return models.Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("failed to read session rows: %w", err)
	}

	session, ok := assembleSession(values)
	if !ok {
		// A partial or corrupt session is unusable; drop it so the next
		// start begins from a clean slate.
		if clearErr := s.Clear(ctx); clearErr != nil {
			log.Err(clearErr).Str("func", "sessionRepository.Load").Msg("failed to clear unusable session state")
		}
		return models.Session{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := s.sq.Delete("session_state").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session state")
		return fmt.Errorf("failed to clear session state: %w", err)
	}

	return nil
}

func (s *sessionRepository) upsert(ctx context.Context, db sq.ExecerContext, key, value string) error {
	query, args, err := s.sq.Insert("session_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save session key %q: %w", key, err)
	}

	return nil
}

func (s *sessionRepository) deleteKey(ctx context.Context, db sq.ExecerContext, key string) error {
	query, args, err := s.sq.Delete("session_state").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete session key %q: %w", key, err)
	}

	return nil
}

// assembleSession rebuilds a [models.Session] from raw key/value pairs.
// The second return value is false when the stored state cannot produce an
// active session.
func assembleSession(values map[string]string) (models.Session, bool) {
	userJSON, hasUser := values[keyUser]
	token, hasToken := values[keyToken]
	if !hasUser || !hasToken || token == "" {
		return models.Session{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil || user.ID == 0 {
		return models.Session{}, false
	}

	rememberMe := false
	if raw, ok := values[keyRememberMe]; ok {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return models.Session{}, false
		}
		rememberMe = parsed
	}

	return models.Session{User: user, Token: token, RememberMe: rememberMe}, true
}
