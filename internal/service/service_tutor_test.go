package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/mock"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/models"
)

func newTestTutorSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientTutorService,
	*mock.MockAPIClient,
) {
	t.Helper()
	mockAdapter := mock.NewMockAPIClient(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)

	mockAdapter.EXPECT().OnTokenRefresh(gomock.Any()).Times(1)

	storages := &store.ClientStorages{Session: mockRepo}
	auth := NewClientAuthService(storages, mockAdapter, logger.Nop())
	svc := NewClientTutorService(mockAdapter, auth, 2, time.Millisecond, logger.Nop())

	return svc, mockAdapter
}

// ── Ask ──────────────────────────────────────────────────────────────────────

func TestClientTutorService_Ask_FlatReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	question := models.TutorQuestion{Question: "What is a goroutine?", ResourceID: 3}

	// The AI endpoints answer with top-level keys, not a data wrapper.
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"answer":          json.RawMessage(`"A lightweight thread managed by the Go runtime."`),
		"processing_time": json.RawMessage(`1.42`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/ai/ask", question).Return(env, nil)

	answer, err := svc.Ask(ctx, question)
	require.NoError(t, err)
	assert.Equal(t, "A lightweight thread managed by the Go runtime.", answer.Answer)
	assert.InDelta(t, 1.42, answer.ProcessingTime, 0.001)
}

func TestClientTutorService_Ask_RetriesServerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	question := models.TutorQuestion{Question: "ping"}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"answer": json.RawMessage(`"pong"`),
	}}

	gomock.InOrder(
		mockAdapter.EXPECT().Post(gomock.Any(), "/api/ai/ask", question).
			Return(models.Envelope{}, adapter.ErrServer),
		mockAdapter.EXPECT().Post(gomock.Any(), "/api/ai/ask", question).
			Return(models.Envelope{}, adapter.ErrTransport),
		mockAdapter.EXPECT().Post(gomock.Any(), "/api/ai/ask", question).
			Return(env, nil),
	)

	answer, err := svc.Ask(ctx, question)
	require.NoError(t, err)
	assert.Equal(t, "pong", answer.Answer)
}

func TestClientTutorService_Ask_DoesNotRetryClientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	question := models.TutorQuestion{Question: "ping"}

	// 400 will not change on a replay; exactly one call may happen.
	mockAdapter.EXPECT().Post(gomock.Any(), "/api/ai/ask", question).
		Return(models.Envelope{}, adapter.ErrBadRequest).Times(1)

	_, err := svc.Ask(ctx, question)
	require.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestClientTutorService_Ask_ExhaustedRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	question := models.TutorQuestion{Question: "ping"}

	// 2 retries after the initial call means exactly three calls.
	mockAdapter.EXPECT().Post(gomock.Any(), "/api/ai/ask", question).
		Return(models.Envelope{}, adapter.ErrServer).Times(3)

	_, err := svc.Ask(ctx, question)
	require.ErrorIs(t, err, adapter.ErrServer)
}

// ── GenerateQuestions / CreateQuiz / EvaluateAnswer ──────────────────────────

func TestClientTutorService_GenerateQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	req := models.QuestionRequest{Topic: "Concurrency", NumQuestions: 2}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"questions": json.RawMessage(`[
			{"question":"What does the select statement do?"},
			{"question":"What is a channel?"}
		]`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/ai/generate-questions", req).Return(env, nil)

	questions, err := svc.GenerateQuestions(ctx, req)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a channel?", questions[1].Question)
}

func TestClientTutorService_CreateQuiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	req := models.QuestionRequest{Topic: "Concurrency", CourseID: 5}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"quiz": json.RawMessage(`{"id":77,"title":"Concurrency Quiz","course_id":5}`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/ai/create-quiz", req).Return(env, nil)

	quiz, err := svc.CreateQuiz(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(77), quiz.ID)
}

func TestClientTutorService_EvaluateAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	eval := models.AnswerEvaluation{
		Question:      "What is a mutex?",
		StudentAnswer: "A lock",
		CorrectAnswer: "A mutual exclusion lock",
	}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"evaluation": json.RawMessage(`{"correct":true,"score":0.9,"feedback":"Close enough."}`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/ai/evaluate-answer", eval).Return(env, nil)

	result, err := svc.EvaluateAnswer(ctx, eval)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.InDelta(t, 0.9, result.Score, 0.001)
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestClientTutorService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"available": json.RawMessage(`true`),
		"provider":  json.RawMessage(`"gemini"`),
		"model":     json.RawMessage(`"flash"`),
	}}
	mockAdapter.EXPECT().Get(ctx, "/api/ai/status", nil).Return(env, nil)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Equal(t, "gemini", status.Provider)
}

func TestClientTutorService_Status_EmptyReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestTutorSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Get(ctx, "/api/ai/status", nil).
		Return(models.Envelope{Success: true}, nil)

	_, err := svc.Status(ctx)
	require.ErrorIs(t, err, ErrMissingPayload)
}
