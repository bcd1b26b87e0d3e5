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

type clientQuizService struct {
	adapter adapter.APIClient
	auth    ClientAuthService
	log     *logger.Logger
}

func NewClientQuizService(api adapter.APIClient, auth ClientAuthService, log *logger.Logger) ClientQuizService {
	return &clientQuizService{adapter: api, auth: auth, log: log}
}

func (q *clientQuizService) List(ctx context.Context, courseID int64) ([]models.Quiz, error) {
	var query url.Values
	if courseID != 0 {
		query = url.Values{"course_id": []string{strconv.FormatInt(courseID, 10)}}
	}

	env, err := q.adapter.Get(ctx, "/api/quizzes", query)
	if err != nil {
		return nil, q.auth.HandleAuthError(ctx, err)
	}

	var quizzes []models.Quiz
	if err = requirePayload(env, "quizzes", &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (q *clientQuizService) Get(ctx context.Context, id int64) (models.Quiz, []models.QuizQuestion, error) {
	env, err := q.adapter.Get(ctx, "/api/quizzes/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return models.Quiz{}, nil, q.auth.HandleAuthError(ctx, err)
	}

	var payload struct {
		models.Quiz
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err = requirePayload(env, "quiz", &payload); err != nil {
		return models.Quiz{}, nil, err
	}
	return payload.Quiz, payload.Questions, nil
}

func (q *clientQuizService) Create(ctx context.Context, input models.QuizInput) (models.Quiz, error) {
	env, err := q.adapter.Post(ctx, "/api/quizzes", input)
	if err != nil {
		return models.Quiz{}, q.auth.HandleAuthError(ctx, err)
	}

	var quiz models.Quiz
	if err = requirePayload(env, "quiz", &quiz); err != nil {
		return models.Quiz{}, err
	}
	q.log.Info().Int64("quiz_id", quiz.ID).Str("title", quiz.Title).Msg("quiz created")
	return quiz, nil
}

func (q *clientQuizService) Update(ctx context.Context, id int64, input models.QuizInput) (models.Quiz, error) {
	env, err := q.adapter.Put(ctx, "/api/quizzes/"+strconv.FormatInt(id, 10), input)
	if err != nil {
		return models.Quiz{}, q.auth.HandleAuthError(ctx, err)
	}

	var quiz models.Quiz
	if err = requirePayload(env, "quiz", &quiz); err != nil {
		return models.Quiz{}, err
	}
	q.log.Info().Int64("quiz_id", id).Msg("quiz updated")
	return quiz, nil
}

func (q *clientQuizService) Submit(ctx context.Context, quizID int64, answers map[string]string) (models.QuizSubmission, error) {
	body := map[string]any{"answers": answers}
	env, err := q.adapter.Post(ctx, fmt.Sprintf("/api/quizzes/%d/submit", quizID), body)
	if err != nil {
		return models.QuizSubmission{}, q.auth.HandleAuthError(ctx, err)
	}

	var submission models.QuizSubmission
	if err = requirePayload(env, "submission", &submission); err != nil {
		return models.QuizSubmission{}, err
	}
	q.log.Info().Int64("quiz_id", quizID).Float64("score", submission.Score).Msg("quiz submitted")
	return submission, nil
}

func (q *clientQuizService) Results(ctx context.Context, quizID int64) (models.QuizResults, error) {
	env, err := q.adapter.Get(ctx, fmt.Sprintf("/api/quizzes/%d/results", quizID), nil)
	if err != nil {
		return models.QuizResults{}, q.auth.HandleAuthError(ctx, err)
	}

	var results models.QuizResults
	if err = requirePayload(env, "results", &results); err != nil {
		return models.QuizResults{}, err
	}
	return results, nil
}

func (q *clientQuizService) History(ctx context.Context) ([]models.QuizSubmission, error) {
	env, err := q.adapter.Get(ctx, "/api/quizzes/history", nil)
	if err != nil {
		return nil, q.auth.HandleAuthError(ctx, err)
	}

	var submissions []models.QuizSubmission
	if err = requirePayload(env, "submissions", &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (q *clientQuizService) Import(ctx context.Context, file models.FileUpload, onProgress func(models.UploadProgress)) (string, error) {
	env, err := q.adapter.Upload(ctx, "/api/quizzes/import", file, onProgress)
	if err != nil {
		return "", q.auth.HandleAuthError(ctx, err)
	}
	q.log.Info().Str("file", file.Name).Msg("quiz import uploaded")
	return env.Message, nil
}

func (q *clientQuizService) Delete(ctx context.Context, id int64) error {
	if _, err := q.adapter.Delete(ctx, "/api/quizzes/"+strconv.FormatInt(id, 10)); err != nil {
		return q.auth.HandleAuthError(ctx, err)
	}
	q.log.Info().Int64("quiz_id", id).Msg("quiz deleted")
	return nil
}
