package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/academyhub/academy-client/internal/config"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/mock"
	"github.com/academyhub/academy-client/internal/service"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/internal/validators"
	"github.com/academyhub/academy-client/models"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller) (*App, *mock.MockAPIClient, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockAPIClient(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)

	mockAdapter.EXPECT().OnTokenRefresh(gomock.Any()).Times(1)

	storages := &store.ClientStorages{Session: mockRepo}
	adapterCfg := config.ClientAdapter{RetryAttempts: 1, RetryBaseDelay: time.Millisecond}
	services := service.NewClientServices(storages, mockAdapter, adapterCfg, logger.Nop())

	app := NewApp(services, config.ClientWorkers{KeepaliveInterval: time.Hour}, logger.Nop())
	return app, mockAdapter, mockRepo
}

func TestApp_Start_NoStoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, mockRepo := newTestApp(t, ctrl)

	mockRepo.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	require.NoError(t, app.Start(context.Background()))
	app.Stop()
}

func TestApp_Start_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAdapter, mockRepo := newTestApp(t, ctrl)

	stored := models.Session{User: models.User{ID: 42}, Token: "tok"}
	gomock.InOrder(
		mockRepo.EXPECT().Load(gomock.Any()).Return(stored, nil),
		mockAdapter.EXPECT().SetToken("tok"),
	)

	require.NoError(t, app.Start(context.Background()))
	assert.True(t, app.Services().Auth.IsAuthenticated())
	app.Stop()
}

func TestApp_Login_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newTestApp(t, ctrl)

	// No adapter expectation: an empty password must never hit the network.
	result := app.Login(context.Background(), models.LoginRequest{Email: "ada@academy.test"})
	require.False(t, result.Success)
	assert.Equal(t, validators.ErrEmptyPassword.Error(), result.Message)
}

func TestApp_Register_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newTestApp(t, ctrl)

	_, err := app.Register(context.Background(), models.RegisterRequest{Email: "ada@academy.test", Password: "secret"})
	require.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestApp_ChangePassword_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newTestApp(t, ctrl)

	err := app.ChangePassword(context.Background(), models.PasswordChange{CurrentPassword: "same", NewPassword: "same"})
	require.ErrorIs(t, err, validators.ErrSamePassword)
}
