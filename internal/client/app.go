package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyhub/academy-client/internal/config"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/service"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/internal/validators"
	"github.com/academyhub/academy-client/internal/workers"
	"github.com/academyhub/academy-client/models"
)

// App is the client application runtime. It exposes the service layer and
// adds local request validation in front of the auth entry points.
type App struct {
	services *service.ClientServices
	validate validators.Validator
	workers  *workers.Workers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *App {
	return &App{
		services: services,
		validate: validators.NewRequestValidator(),
		workers: workers.NewWorkers(
			workers.NewKeepaliveWorker(services.Keepalive, cfg.KeepaliveInterval),
		),
		log: log,
	}
}

// Start restores a persisted session when one exists and launches the
// background workers. A missing local session is not an error; the caller
// simply has to log in.
func (a *App) Start(ctx context.Context) error {
	session, err := a.services.Auth.RestoreSession(ctx)
	switch {
	case err == nil:
		a.log.Info().Int64("user_id", session.User.ID).Msg("continuing previous session")
	case errors.Is(err, store.ErrLocalSessionNotFound):
		a.log.Info().Msg("no stored session, login required")
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	a.workers.Run()
	return nil
}

// Stop shuts the background workers down and blocks until they exit.
func (a *App) Stop() {
	a.workers.Stop()
}

// Services exposes the full service layer for operations that need no local
// precheck.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Login validates the credentials locally, then delegates to the auth
// service. Validation failures come back inside the result, matching the
// service's own failure shape.
func (a *App) Login(ctx context.Context, req models.LoginRequest) models.LoginResult {
	if err := a.validate.Validate(ctx, req); err != nil {
		return models.LoginResult{Message: err.Error()}
	}
	return a.services.Auth.Login(ctx, req)
}

// Register validates the registration form locally, then delegates to the
// auth service.
func (a *App) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := a.validate.Validate(ctx, req); err != nil {
		return "", err
	}
	return a.services.Auth.Register(ctx, req)
}

// SelfRegister validates the registration form locally, then files a
// registration that awaits admin approval.
func (a *App) SelfRegister(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := a.validate.Validate(ctx, req); err != nil {
		return "", err
	}
	return a.services.Auth.SelfRegister(ctx, req)
}

// ChangePassword validates the password pair locally, then delegates to the
// auth service.
func (a *App) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if err := a.validate.Validate(ctx, change); err != nil {
		return err
	}
	return a.services.Auth.ChangePassword(ctx, change)
}

// Logout ends the session server-side and locally. The keepalive job winds
// down on its own once its next check finds no session.
func (a *App) Logout(ctx context.Context) error {
	return a.services.Auth.Logout(ctx)
}
