package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
)

type clientResourceService struct {
	adapter adapter.APIClient
	auth    ClientAuthService
	log     *logger.Logger
}

func NewClientResourceService(api adapter.APIClient, auth ClientAuthService, log *logger.Logger) ClientResourceService {
	return &clientResourceService{adapter: api, auth: auth, log: log}
}

func (r *clientResourceService) List(ctx context.Context, courseID int64) ([]models.Resource, error) {
	var query url.Values
	if courseID != 0 {
		query = url.Values{"course_id": []string{strconv.FormatInt(courseID, 10)}}
	}

	env, err := r.adapter.Get(ctx, "/api/resources", query)
	if err != nil {
		return nil, r.auth.HandleAuthError(ctx, err)
	}

	var resources []models.Resource
	if err = requirePayload(env, "resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *clientResourceService) Get(ctx context.Context, id int64) (models.Resource, error) {
	env, err := r.adapter.Get(ctx, "/api/resources/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return models.Resource{}, r.auth.HandleAuthError(ctx, err)
	}

	var resource models.Resource
	if err = requirePayload(env, "resource", &resource); err != nil {
		return models.Resource{}, err
	}
	return resource, nil
}

func (r *clientResourceService) Create(ctx context.Context, input models.ResourceInput) (models.Resource, error) {
	env, err := r.adapter.Post(ctx, "/api/resources", input)
	if err != nil {
		return models.Resource{}, r.auth.HandleAuthError(ctx, err)
	}

	var resource models.Resource
	if err = requirePayload(env, "resource", &resource); err != nil {
		return models.Resource{}, err
	}
	r.log.Info().Int64("resource_id", resource.ID).Str("type", string(resource.Type)).Msg("resource created")
	return resource, nil
}

func (r *clientResourceService) Update(ctx context.Context, id int64, input models.ResourceInput) (models.Resource, error) {
	env, err := r.adapter.Put(ctx, "/api/resources/"+strconv.FormatInt(id, 10), input)
	if err != nil {
		return models.Resource{}, r.auth.HandleAuthError(ctx, err)
	}

	var resource models.Resource
	if err = requirePayload(env, "resource", &resource); err != nil {
		return models.Resource{}, err
	}
	r.log.Info().Int64("resource_id", id).Msg("resource updated")
	return resource, nil
}

func (r *clientResourceService) UploadFile(ctx context.Context, input models.ResourceInput, file models.FileUpload, onProgress func(models.UploadProgress)) (models.Resource, error) {
	if file.Fields == nil {
		file.Fields = make(map[string]string, 4)
	}
	file.Fields["title"] = input.Title
	file.Fields["type"] = string(input.Type)
	file.Fields["course_id"] = strconv.FormatInt(input.CourseID, 10)
	if input.Description != "" {
		file.Fields["description"] = input.Description
	}

	env, err := r.adapter.Upload(ctx, "/api/resources", file, onProgress)
	if err != nil {
		return models.Resource{}, r.auth.HandleAuthError(ctx, err)
	}

	var resource models.Resource
	if err = requirePayload(env, "resource", &resource); err != nil {
		return models.Resource{}, err
	}
	r.log.Info().Int64("resource_id", resource.ID).Str("file", file.Name).Msg("file resource uploaded")
	return resource, nil
}

func (r *clientResourceService) UpdateProgress(ctx context.Context, resourceID int64, update models.ProgressUpdate) (models.Progress, error) {
	env, err := r.adapter.Post(ctx, fmt.Sprintf("/api/resources/%d/progress", resourceID), update)
	if err != nil {
		return models.Progress{}, r.auth.HandleAuthError(ctx, err)
	}

	var progress models.Progress
	if err = requirePayload(env, "progress", &progress); err != nil {
		return models.Progress{}, err
	}
	return progress, nil
}

func (r *clientResourceService) MarkViewed(ctx context.Context, resourceID int64) error {
	if _, err := r.adapter.Get(ctx, fmt.Sprintf("/api/resources/%d/view", resourceID), nil); err != nil {
		return r.auth.HandleAuthError(ctx, err)
	}
	return nil
}

func (r *clientResourceService) Download(ctx context.Context, resourceID int64) ([]byte, string, error) {
	body, contentType, err := r.adapter.GetRaw(ctx, fmt.Sprintf("/api/resources/%d/download", resourceID), nil)
	if err != nil {
		return nil, "", r.auth.HandleAuthError(ctx, err)
	}
	return body, contentType, nil
}

func (r *clientResourceService) Delete(ctx context.Context, id int64) error {
	if _, err := r.adapter.Delete(ctx, "/api/resources/"+strconv.FormatInt(id, 10)); err != nil {
		return r.auth.HandleAuthError(ctx, err)
	}
	r.log.Info().Int64("resource_id", id).Msg("resource deleted")
	return nil
}
