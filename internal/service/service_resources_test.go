package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/internal/mock"
	"github.com/academyhub/academy-client/internal/store"
	"github.com/academyhub/academy-client/models"
)

func newTestResourceSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ClientResourceService,
	*mock.MockAPIClient,
) {
	t.Helper()
	mockAdapter := mock.NewMockAPIClient(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)

	mockAdapter.EXPECT().OnTokenRefresh(gomock.Any()).Times(1)

	storages := &store.ClientStorages{Session: mockRepo}
	auth := NewClientAuthService(storages, mockAdapter, logger.Nop())
	svc := NewClientResourceService(mockAdapter, auth, logger.Nop())

	return svc, mockAdapter
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientResourceService_List_CourseFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"resources": json.RawMessage(`[{"id":1,"title":"Syllabus","type":"pdf","course_id":5}]`),
	}}
	mockAdapter.EXPECT().Get(ctx, "/api/resources", url.Values{"course_id": []string{"5"}}).
		Return(env, nil)

	resources, err := svc.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, models.ResourcePDF, resources[0].Type)
}

func TestClientResourceService_List_NoFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"resources": json.RawMessage(`[]`),
	}}
	// courseID 0 must not send a course_id param.
	mockAdapter.EXPECT().Get(ctx, "/api/resources", nil).Return(env, nil)

	resources, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientResourceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	input := models.ResourceInput{Title: "Syllabus v2", Description: "revised"}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"resource": json.RawMessage(`{"id":7,"title":"Syllabus v2","type":"pdf","course_id":5}`),
	}}
	mockAdapter.EXPECT().Put(ctx, "/api/resources/7", input).Return(env, nil)

	resource, err := svc.Update(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, "Syllabus v2", resource.Title)
}

// ── UploadFile ───────────────────────────────────────────────────────────────

func TestClientResourceService_UploadFile_MergesFormFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	input := models.ResourceInput{
		Title:       "Lecture 1",
		Type:        models.ResourcePDF,
		CourseID:    5,
		Description: "Intro",
	}
	file := models.FileUpload{Name: "lecture1.pdf", Size: 4, Reader: strings.NewReader("%PDF")}

	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"resource": json.RawMessage(`{"id":12,"title":"Lecture 1","type":"pdf","course_id":5}`),
	}}
	mockAdapter.EXPECT().Upload(ctx, "/api/resources", gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, _ string, upload models.FileUpload, _ func(models.UploadProgress)) (models.Envelope, error) {
			assert.Equal(t, "lecture1.pdf", upload.Name)
			assert.Equal(t, "Lecture 1", upload.Fields["title"])
			assert.Equal(t, "pdf", upload.Fields["type"])
			assert.Equal(t, "5", upload.Fields["course_id"])
			assert.Equal(t, "Intro", upload.Fields["description"])
			return env, nil
		},
	)

	resource, err := svc.UploadFile(ctx, input, file, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resource.ID)
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestClientResourceService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetRaw(ctx, "/api/resources/12/download", nil).
		Return([]byte("%PDF"), "application/pdf", nil)

	body, contentType, err := svc.Download(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), body)
	assert.Equal(t, "application/pdf", contentType)
}

// ── UpdateProgress / MarkViewed ──────────────────────────────────────────────

func TestClientResourceService_UpdateProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	update := models.ProgressUpdate{Status: models.ProgressCompleted, CompletionPercentage: 100}
	env := models.Envelope{Success: true, Extra: map[string]json.RawMessage{
		"progress": json.RawMessage(`{"id":3,"resource_id":12,"status":"completed","completion_percentage":100}`),
	}}
	mockAdapter.EXPECT().Post(ctx, "/api/resources/12/progress", update).Return(env, nil)

	progress, err := svc.UpdateProgress(ctx, 12, update)
	require.NoError(t, err)
	assert.Equal(t, models.ProgressCompleted, progress.Status)
}

func TestClientResourceService_MarkViewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestResourceSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Get(ctx, "/api/resources/12/view", nil).
		Return(models.Envelope{Success: true}, nil)

	require.NoError(t, svc.MarkViewed(ctx, 12))
}
