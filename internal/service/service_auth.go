package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/app"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/internal/utils"
	"github.com/academyhub/academy-client/models"
)

type clientAuthService struct {
	storages *store.ClientStorages
	adapter  adapter.APIClient
	log      *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewClientAuthService wires the auth service to the transport and the local
// session store. It registers itself for token-refresh notifications so the
// persisted token always matches the one the transport is using.
func NewClientAuthService(storages *store.ClientStorages, api adapter.APIClient, log *logger.Logger) ClientAuthService {
	a := &clientAuthService{storages: storages, adapter: api, log: log}
	api.OnTokenRefresh(a.onTokenRefresh)
	return a
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) models.LoginResult {
	env, err := a.adapter.Post(ctx, "/api/auth/login", req)
	if err != nil {
		msg := env.Message
		if msg == "" {
			msg = adapter.ErrorMessage(err)
		}
		a.log.Warn().Err(err).Str("email", req.Email).Msg("login rejected")
		return models.LoginResult{Message: msg}
	}

	var payload struct {
		User        models.User `json:"user"`
		AccessToken string      `json:"access_token"`
	}
	if derr := env.DecodeData(&payload); derr != nil || payload.AccessToken == "" {
		a.log.Error().AnErr("decode", derr).Msg("login reply missing access token")
		return models.LoginResult{Message: app.MsgInvalidResponse}
	}

	session := models.Session{User: payload.User, Token: payload.AccessToken, RememberMe: req.RememberMe}
	a.adapter.SetToken(session.Token)
	a.setSession(session)

	if serr := a.storages.Session.Save(ctx, session); serr != nil {
		// The in-memory session still works; only restarts lose it.
		a.log.Err(serr).Msg("failed to persist session")
	}

	a.log.Info().Int64("user_id", payload.User.ID).Str("role", string(payload.User.Role)).Msg("logged in")
	return models.LoginResult{Success: true, User: payload.User, Message: env.Message}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	env, err := a.adapter.Post(ctx, "/api/auth/register", req)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return env.Message, nil
}

func (a *clientAuthService) SelfRegister(ctx context.Context, req models.RegisterRequest) (string, error) {
	env, err := a.adapter.Post(ctx, "/api/auth/self-register", req)
	if err != nil {
		return "", fmt.Errorf("self-register: %w", err)
	}
	return env.Message, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if _, err := a.adapter.Post(ctx, "/api/auth/logout", nil); err != nil {
		// Local cleanup happens regardless of what the server said.
		a.log.Debug().Err(err).Msg("server logout failed, clearing local session anyway")
	}
	return a.clearLocal(ctx)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.storages.Session.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if utils.TokenExpired(session.Token, time.Now()) {
		a.log.Info().Int64("user_id", session.User.ID).Msg("stored token already expired, dropping session")
		if cerr := a.storages.Session.Clear(ctx); cerr != nil {
			a.log.Err(cerr).Msg("failed to clear expired session")
		}
		return models.Session{}, store.ErrLocalSessionNotFound
	}

	a.adapter.SetToken(session.Token)
	a.setSession(session)
	a.log.Info().Int64("user_id", session.User.ID).Msg("session restored")
	return session, nil
}

func (a *clientAuthService) CheckAuth(ctx context.Context) error {
	env, err := a.adapter.Get(ctx, "/api/auth/check-auth", nil)
	if err != nil {
		return a.HandleAuthError(ctx, err)
	}

	var authenticated bool
	if derr := env.DecodeField("authenticated", &authenticated); derr == nil && !authenticated {
		if cerr := a.clearLocal(ctx); cerr != nil {
			a.log.Err(cerr).Msg("failed to clear rejected session")
		}
		return ErrSessionExpired
	}

	// The server may return a fresher user record; keep the session current.
	var user models.User
	if derr := env.DecodeField("user", &user); derr == nil && user.ID != 0 {
		a.mu.Lock()
		if a.session.Active() {
			a.session.User = user
		}
		a.mu.Unlock()
	}

	return nil
}

func (a *clientAuthService) CurrentSession() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.CurrentSession().Active()
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	env, err := a.adapter.Get(ctx, "/api/auth/profile", nil)
	if err != nil {
		return models.User{}, a.HandleAuthError(ctx, err)
	}

	var user models.User
	if err = requirePayload(env, "user", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	env, err := a.adapter.Put(ctx, "/api/auth/profile", update)
	if err != nil {
		return models.User{}, a.HandleAuthError(ctx, err)
	}

	var user models.User
	if err = requirePayload(env, "user", &user); err != nil {
		return models.User{}, err
	}

	a.mu.Lock()
	if a.session.Active() {
		a.session.User = user
	}
	session := a.session
	a.mu.Unlock()

	if session.Active() {
		if serr := a.storages.Session.Save(ctx, session); serr != nil {
			a.log.Err(serr).Msg("failed to persist updated profile")
		}
	}

	return user, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	_, err := a.adapter.Post(ctx, "/api/auth/change-password", change)
	if err != nil {
		return a.HandleAuthError(ctx, err)
	}
	return nil
}

func (a *clientAuthService) HandleAuthError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	if cerr := a.clearLocal(ctx); cerr != nil {
		a.log.Err(cerr).Msg("failed to clear expired session")
	}
	return fmt.Errorf("%w: %v", ErrSessionExpired, err)
}

func (a *clientAuthService) setSession(session models.Session) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
}

func (a *clientAuthService) clearLocal(ctx context.Context) error {
	a.adapter.SetToken("")
	a.setSession(models.Session{})
	return a.storages.Session.Clear(ctx)
}

// onTokenRefresh keeps the persisted token aligned with the transport after
// a transparent refresh. It runs on the request goroutine, so persistence
// gets its own short deadline instead of the request's context.
func (a *clientAuthService) onTokenRefresh(token string) {
	a.mu.Lock()
	active := a.session.Active()
	if active {
		a.session.Token = token
	}
	a.mu.Unlock()

	if !active {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.storages.Session.SaveToken(ctx, token); err != nil {
		a.log.Err(err).Msg("failed to persist refreshed token")
	}
}
