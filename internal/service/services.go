package service

import (
	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/config"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/store"
)

type ClientServices struct {
	Auth      ClientAuthService
	Courses   ClientCourseService
	Resources ClientResourceService
	Quizzes   ClientQuizService
	Tutor     ClientTutorService
	Admin     ClientAdminService
	Keepalive ClientSessionJob
}

func NewClientServices(storages *store.ClientStorages, api adapter.APIClient, cfg config.ClientAdapter, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(storages, api, log)

	return &ClientServices{
		Auth:      authSvc,
		Courses:   NewClientCourseService(api, authSvc, log),
		Resources: NewClientResourceService(api, authSvc, log),
		Quizzes:   NewClientQuizService(api, authSvc, log),
		Tutor:     NewClientTutorService(api, authSvc, cfg.RetryAttempts, cfg.RetryBaseDelay, log),
		Admin:     NewClientAdminService(api, authSvc, log),
		Keepalive: NewClientSessionJob(authSvc, log),
	}
}
