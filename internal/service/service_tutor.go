package service

import (
	"context"
	"time"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
)

type clientTutorService struct {
	adapter adapter.APIClient
	auth    ClientAuthService
	log     *logger.Logger

	retryAttempts  uint64
	retryBaseDelay time.Duration
}

func NewClientTutorService(api adapter.APIClient, auth ClientAuthService, retryAttempts uint64, retryBaseDelay time.Duration, log *logger.Logger) ClientTutorService {
	return &clientTutorService{
		adapter:        api,
		auth:           auth,
		log:            log,
		retryAttempts:  retryAttempts,
		retryBaseDelay: retryBaseDelay,
	}
}

// post sends one AI request with retries around transient failures and
// decodes the required payload field into v.
func (s *clientTutorService) post(ctx context.Context, path string, body any, field string, v any) error {
	var env models.Envelope
	err := adapter.RetryRequest(ctx, s.retryAttempts, s.retryBaseDelay, func(ctx context.Context) error {
		var err error
		env, err = s.adapter.Post(ctx, path, body)
		return err
	})
	if err != nil {
		return s.auth.HandleAuthError(ctx, err)
	}
	if v == nil {
		return nil
	}
	return requireFlat(env, field, v)
}

func (s *clientTutorService) Ask(ctx context.Context, question models.TutorQuestion) (models.TutorAnswer, error) {
	started := time.Now()

	// The answer and its metadata arrive as top-level keys.
	var answer models.TutorAnswer
	if err := s.post(ctx, "/api/ai/ask", question, "", &answer); err != nil {
		return models.TutorAnswer{}, err
	}

	s.log.Debug().Dur("took", time.Since(started)).Msg("tutor answered")
	return answer, nil
}

func (s *clientTutorService) GenerateQuestions(ctx context.Context, req models.QuestionRequest) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := s.post(ctx, "/api/ai/generate-questions", req, "questions", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *clientTutorService) CreateQuiz(ctx context.Context, req models.QuestionRequest) (models.Quiz, error) {
	var quiz models.Quiz
	if err := s.post(ctx, "/api/ai/create-quiz", req, "quiz", &quiz); err != nil {
		return models.Quiz{}, err
	}
	s.log.Info().Int64("quiz_id", quiz.ID).Str("topic", req.Topic).Msg("AI quiz created")
	return quiz, nil
}

func (s *clientTutorService) EvaluateAnswer(ctx context.Context, eval models.AnswerEvaluation) (models.EvaluationResult, error) {
	var result models.EvaluationResult
	if err := s.post(ctx, "/api/ai/evaluate-answer", eval, "evaluation", &result); err != nil {
		return models.EvaluationResult{}, err
	}
	return result, nil
}

func (s *clientTutorService) Status(ctx context.Context) (models.AIStatus, error) {
	env, err := s.adapter.Get(ctx, "/api/ai/status", nil)
	if err != nil {
		return models.AIStatus{}, s.auth.HandleAuthError(ctx, err)
	}

	var status models.AIStatus
	if err = requireFlat(env, "", &status); err != nil {
		return models.AIStatus{}, err
	}
	return status, nil
}
