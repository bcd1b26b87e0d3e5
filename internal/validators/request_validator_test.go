package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/academyhub/academy-client/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validLogin() models.LoginRequest {
	return models.LoginRequest{Email: "ada@academy.test", Password: "secret"}
}

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{Name: "Ada", Email: "ada@academy.test", Password: "secret"}
}

func validResource() models.ResourceInput {
	return models.ResourceInput{
		Title:    "Lecture notes",
		Type:     models.ResourceText,
		CourseID: 1,

		TextContent: "Go was announced in 2009.",
	}
}

func validQuiz() models.QuizInput {
	return models.QuizInput{
		Title:    "Basics",
		CourseID: 1,
		Topic:    "Go",
		Questions: []models.QuizQuestion{
			{
				QuestionType: models.QuestionMultipleChoice,
				Question:     "Which keyword starts a goroutine?",
				Options:      []string{"go", "run"},
				Answer:       "go",
			},
		},
	}
}

// ---------------------------------------------------------------------------
// TestNewRequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer forms", func(t *testing.T) {
		req := validLogin()
		require.NoError(t, v.Validate(ctx, req))
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validLogin(), "no-such-field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Auth
// ---------------------------------------------------------------------------

func TestValidate_Login(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.LoginRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.LoginRequest) {}},
		{name: "empty email", mutate: func(r *models.LoginRequest) { r.Email = "" }, wantErr: ErrEmptyEmail},
		{name: "whitespace email", mutate: func(r *models.LoginRequest) { r.Email = "   " }, wantErr: ErrEmptyEmail},
		{name: "empty password", mutate: func(r *models.LoginRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLogin()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_Login_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	// Only the email field is checked; the missing password passes.
	req := models.LoginRequest{Email: "ada@academy.test"}
	require.NoError(t, v.Validate(ctx, req, FieldEmail))
	require.ErrorIs(t, v.Validate(ctx, req, FieldPassword), ErrEmptyPassword)
}

func TestValidate_Register(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validRegister()))

	nameless := validRegister()
	nameless.Name = ""
	require.ErrorIs(t, v.Validate(ctx, nameless), ErrEmptyName)
}

func TestValidate_PasswordChange(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		change  models.PasswordChange
		wantErr error
	}{
		{name: "valid", change: models.PasswordChange{CurrentPassword: "old", NewPassword: "new"}},
		{name: "missing current", change: models.PasswordChange{NewPassword: "new"}, wantErr: ErrEmptyCurrent},
		{name: "missing new", change: models.PasswordChange{CurrentPassword: "old"}, wantErr: ErrEmptyPassword},
		{name: "unchanged", change: models.PasswordChange{CurrentPassword: "same", NewPassword: "same"}, wantErr: ErrSamePassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.change)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Content
// ---------------------------------------------------------------------------

func TestValidate_Course(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.CourseInput{Title: "Go"}))
	require.ErrorIs(t, v.Validate(ctx, models.CourseInput{}), ErrEmptyTitle)
	require.ErrorIs(t, v.Validate(ctx, models.CourseInput{Title: "Go"}, FieldCourseID), ErrInvalidCourseID)
}

func TestValidate_Resource(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ResourceInput)
		wantErr error
	}{
		{name: "valid text", mutate: func(*models.ResourceInput) {}},
		{name: "valid link", mutate: func(r *models.ResourceInput) {
			r.Type = models.ResourceLink
			r.URL = "https://go.dev"
		}},
		{name: "empty title", mutate: func(r *models.ResourceInput) { r.Title = "" }, wantErr: ErrEmptyTitle},
		{name: "bogus type", mutate: func(r *models.ResourceInput) { r.Type = "hologram" }, wantErr: ErrInvalidType},
		{name: "zero course", mutate: func(r *models.ResourceInput) { r.CourseID = 0 }, wantErr: ErrInvalidCourseID},
		{name: "link without url", mutate: func(r *models.ResourceInput) {
			r.Type = models.ResourceLink
			r.URL = ""
		}, wantErr: ErrMissingContent},
		{name: "text without content", mutate: func(r *models.ResourceInput) {
			r.TextContent = ""
		}, wantErr: ErrMissingContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validResource()
			tt.mutate(&input)

			err := v.Validate(ctx, input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_Quiz(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validQuiz()))

	empty := validQuiz()
	empty.Questions = nil
	require.ErrorIs(t, v.Validate(ctx, empty), ErrNoQuestions)

	short := validQuiz()
	short.Questions[0].Options = []string{"go"}
	require.ErrorIs(t, v.Validate(ctx, short), ErrInvalidQuizOptions)
}

// ---------------------------------------------------------------------------
// TestValidate_AI
// ---------------------------------------------------------------------------

func TestValidate_TutorQuestion(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.TutorQuestion{Question: "What is a slice?"}))
	require.ErrorIs(t, v.Validate(ctx, models.TutorQuestion{}), ErrEmptyQuestion)
}

func TestValidate_QuestionRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.QuestionRequest{Topic: "Concurrency"}))
	require.ErrorIs(t, v.Validate(ctx, models.QuestionRequest{}), ErrEmptyTopic)
}

// ---------------------------------------------------------------------------
// TestValidate_FileUpload
// ---------------------------------------------------------------------------

func TestValidate_FileUpload(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.FileUpload{Name: "quiz.json", Reader: strings.NewReader("{}")}
	require.NoError(t, v.Validate(ctx, valid))

	require.ErrorIs(t, v.Validate(ctx, models.FileUpload{Name: "quiz.json"}), ErrNoFile)
	require.ErrorIs(t, v.Validate(ctx, models.FileUpload{Reader: strings.NewReader("{}")}), ErrEmptyName)
}
