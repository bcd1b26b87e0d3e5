package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/academyhub/academy-client/internal/adapter"
	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/mock"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/models"
)

func newTestCourseSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientCourseService,
	*mock.MockAPIClient,
	*mock.MockSessionRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockAPIClient(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)

	mockAdapter.EXPECT().OnTokenRefresh(gomock.Any()).Times(1)

	storages := &store.ClientStorages{Session: mockRepo}
	auth := NewClientAuthService(storages, mockAdapter, logger.Nop())
	svc := NewClientCourseService(mockAdapter, auth, logger.Nop())

	return svc, mockAdapter, mockRepo
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientCourseService_List_FromDataPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Data: json.RawMessage(
		`[{"id":1,"title":"Networking 101"},{"id":2,"title":"Databases"}]`,
	)}
	mockAdapter.EXPECT().Get(ctx, "/api/courses", nil).Return(env, nil)

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Networking 101", courses[0].Title)
}

func TestClientCourseService_List_FromPassthroughKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	// Some backend replies skip "data" and emit a named top-level key.
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"courses": json.RawMessage(`[{"id":3,"title":"Security"}]`),
	}}
	mockAdapter.EXPECT().Get(ctx, "/api/courses", nil).Return(env, nil)

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, int64(3), courses[0].ID)
}

func TestClientCourseService_List_EmptyReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Get(ctx, "/api/courses", nil).
		Return(models.Envelope{Success: true}, nil)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, ErrMissingPayload)
}

func TestClientCourseService_List_UnauthorizedClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockRepo := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Get(ctx, "/api/courses", nil).
			Return(models.Envelope{}, adapter.ErrUnauthorized),
		mockAdapter.EXPECT().SetToken(""),
		mockRepo.EXPECT().Clear(ctx).Return(nil),
	)

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

// ── Get / Topics ─────────────────────────────────────────────────────────────

func TestClientCourseService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"course": json.RawMessage(`{"id":5,"title":"Go","department_id":2}`),
	}}
	mockAdapter.EXPECT().Get(ctx, "/api/courses/5", nil).Return(env, nil)

	course, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Go", course.Title)
	assert.Equal(t, int64(2), course.DepartmentID)
}

func TestClientCourseService_Topics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"topics": json.RawMessage(`[{"id":9,"title":"Sockets","type":"pdf"}]`),
	}}
	mockAdapter.EXPECT().Get(ctx, "/api/courses/5/topics", nil).Return(env, nil)

	topics, err := svc.Topics(ctx, 5)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Sockets", topics[0].Title)
}

// ── Create / Update / Delete ─────────────────────────────────────────────────

func TestClientCourseService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	input := models.CourseInput{Title: "New Course", DepartmentID: 1}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"course": json.RawMessage(`{"id":10,"title":"New Course","department_id":1}`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/courses", input).Return(env, nil)

	course, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(10), course.ID)
}

func TestClientCourseService_Update_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	input := models.CourseInput{Title: "Renamed"}
	mockAdapter.EXPECT().Put(ctx, "/api/courses/10", input).
		Return(models.Envelope{}, adapter.ErrForbidden)

	_, err := svc.Update(ctx, 10, input)
	require.ErrorIs(t, err, adapter.ErrForbidden)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestClientCourseService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestCourseSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Delete(ctx, "/api/courses/10").
		Return(models.Envelope{Success: true}, nil)

	require.NoError(t, svc.Delete(ctx, 10))
}
