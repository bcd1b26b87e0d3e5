package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
)

type clientCourseService struct {
	adapter adapter.APIClient
	auth    ClientAuthService
	log     *logger.Logger
}

func NewClientCourseService(api adapter.APIClient, auth ClientAuthService, log *logger.Logger) ClientCourseService {
	return &clientCourseService{adapter: api, auth: auth, log: log}
}

func (c *clientCourseService) List(ctx context.Context) ([]models.Course, error) {
	env, err := c.adapter.Get(ctx, "/api/courses", nil)
	if err != nil {
		return nil, c.auth.HandleAuthError(ctx, err)
	}

	var courses []models.Course
	if err = requirePayload(env, "courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *clientCourseService) Get(ctx context.Context, id int64) (models.Course, error) {
	env, err := c.adapter.Get(ctx, "/api/courses/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return models.Course{}, c.auth.HandleAuthError(ctx, err)
	}

	var course models.Course
	if err = requirePayload(env, "course", &course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (c *clientCourseService) Topics(ctx context.Context, courseID int64) ([]models.Topic, error) {
	env, err := c.adapter.Get(ctx, fmt.Sprintf("/api/courses/%d/topics", courseID), nil)
	if err != nil {
		return nil, c.auth.HandleAuthError(ctx, err)
	}

	var topics []models.Topic
	if err = requirePayload(env, "topics", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *clientCourseService) ByDepartment(ctx context.Context, departmentID int64) ([]models.Course, error) {
	env, err := c.adapter.Get(ctx, fmt.Sprintf("/api/courses/department/%d", departmentID), nil)
	if err != nil {
		return nil, c.auth.HandleAuthError(ctx, err)
	}

	var courses []models.Course
	if err = requirePayload(env, "courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *clientCourseService) AITutorCourse(ctx context.Context) (models.Course, error) {
	env, err := c.adapter.Get(ctx, "/api/courses/ai-tutor", nil)
	if err != nil {
		return models.Course{}, c.auth.HandleAuthError(ctx, err)
	}

	var course models.Course
	if err = requirePayload(env, "course", &course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (c *clientCourseService) Create(ctx context.Context, input models.CourseInput) (models.Course, error) {
	env, err := c.adapter.Post(ctx, "/api/courses", input)
	if err != nil {
		return models.Course{}, c.auth.HandleAuthError(ctx, err)
	}

	var course models.Course
	if err = requirePayload(env, "course", &course); err != nil {
		return models.Course{}, err
	}
	c.log.Info().Int64("course_id", course.ID).Str("title", course.Title).Msg("course created")
	return course, nil
}

func (c *clientCourseService) Update(ctx context.Context, id int64, input models.CourseInput) (models.Course, error) {
	env, err := c.adapter.Put(ctx, "/api/courses/"+strconv.FormatInt(id, 10), input)
	if err != nil {
		return models.Course{}, c.auth.HandleAuthError(ctx, err)
	}

	var course models.Course
	if err = requirePayload(env, "course", &course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (c *clientCourseService) Delete(ctx context.Context, id int64) error {
	if _, err := c.adapter.Delete(ctx, "/api/courses/"+strconv.FormatInt(id, 10)); err != nil {
		return c.auth.HandleAuthError(ctx, err)
	}
	c.log.Info().Int64("course_id", id).Msg("course deleted")
	return nil
}
