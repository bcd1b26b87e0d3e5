package validators

import (
	"context"
	"strings"

	"github.com/academyhub/academy-client/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldEmail targets the email field of an auth request.
	FieldEmail = "email"

	// FieldPassword targets the password field of an auth request.
	FieldPassword = "password"

	// FieldName targets the display name field of a registration.
	FieldName = "name"

	// FieldTitle targets the title field of a course, quiz, or resource.
	FieldTitle = "title"

	// FieldTopic targets the topic field of a quiz or AI generation request.
	FieldTopic = "topic"

	// FieldQuestion targets the free-form question text of an AI request.
	FieldQuestion = "question"

	// FieldCourseID targets the owning course reference of quiz and
	// resource requests.
	FieldCourseID = "course_id"

	// FieldType targets the resource content type (pdf, text, link, video).
	FieldType = "type"

	// FieldContent targets the type-dependent content of a resource: URL
	// for links, text body for text resources.
	FieldContent = "content"

	// FieldQuestions targets the questions list of a quiz definition.
	FieldQuestions = "questions"

	// FieldFile targets the file payload of an upload request.
	FieldFile = "file"
)

// allowedResourceTypes is the exhaustive set of ResourceType values accepted
// by the validator. Any type not present in this slice is considered invalid.
var allowedResourceTypes = []models.ResourceType{
	models.ResourcePDF,
	models.ResourceText,
	models.ResourceLink,
	models.ResourceVideo,
}

// RequestValidator implements the Validator interface for the request bodies
// sent by the client services: LoginRequest, RegisterRequest, PasswordChange,
// CourseInput, ResourceInput, QuizInput, TutorQuestion, QuestionRequest, and
// FileUpload.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known request body.
// Optional fields restrict validation to the named subset; when omitted, a
// sensible default set of fields is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	case models.CourseInput:
		return v.validateCourse(ctx, value, fields...)
	case *models.CourseInput:
		return v.validateCourse(ctx, *value, fields...)

	case models.ResourceInput:
		return v.validateResource(ctx, value, fields...)
	case *models.ResourceInput:
		return v.validateResource(ctx, *value, fields...)

	case models.QuizInput:
		return v.validateQuiz(ctx, value, fields...)
	case *models.QuizInput:
		return v.validateQuiz(ctx, *value, fields...)

	case models.TutorQuestion:
		return v.validateTutorQuestion(ctx, value, fields...)
	case *models.TutorQuestion:
		return v.validateTutorQuestion(ctx, *value, fields...)

	case models.QuestionRequest:
		return v.validateQuestionRequest(ctx, value, fields...)
	case *models.QuestionRequest:
		return v.validateQuestionRequest(ctx, *value, fields...)

	case models.FileUpload:
		return v.validateFileUpload(ctx, value, fields...)
	case *models.FileUpload:
		return v.validateFileUpload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidResourceType(rt models.ResourceType) bool {
	for _, t := range allowedResourceTypes {
		if rt == t {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(req.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if blank(req.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validatePasswordChange(_ context.Context, change models.PasswordChange, fields ...string) error {
	if len(fields) != 0 {
		return ErrUnknownField
	}
	if change.CurrentPassword == "" {
		return ErrEmptyCurrent
	}
	if change.NewPassword == "" {
		return ErrEmptyPassword
	}
	if change.NewPassword == change.CurrentPassword {
		return ErrSamePassword
	}
	return nil
}

func (v *RequestValidator) validateCourse(_ context.Context, input models.CourseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(input.Title) {
				return ErrEmptyTitle
			}
		case FieldCourseID:
			if input.DepartmentID <= 0 {
				return ErrInvalidCourseID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateResource(_ context.Context, input models.ResourceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldType, FieldCourseID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(input.Title) {
				return ErrEmptyTitle
			}
		case FieldType:
			if !isValidResourceType(input.Type) {
				return ErrInvalidType
			}
		case FieldCourseID:
			if input.CourseID <= 0 {
				return ErrInvalidCourseID
			}
		case FieldContent:
			if input.Type == models.ResourceLink && blank(input.URL) {
				return ErrMissingContent
			}
			if input.Type == models.ResourceText && blank(input.TextContent) {
				return ErrMissingContent
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateQuiz(_ context.Context, input models.QuizInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCourseID, FieldQuestions}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(input.Title) {
				return ErrEmptyTitle
			}
		case FieldCourseID:
			if input.CourseID <= 0 {
				return ErrInvalidCourseID
			}
		case FieldQuestions:
			if len(input.Questions) == 0 {
				return ErrNoQuestions
			}
			for _, q := range input.Questions {
				if blank(q.Question) {
					return ErrEmptyQuestion
				}
				if q.QuestionType == models.QuestionMultipleChoice && len(q.Options) < 2 {
					return ErrInvalidQuizOptions
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateTutorQuestion(_ context.Context, q models.TutorQuestion, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if blank(q.Question) {
				return ErrEmptyQuestion
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateQuestionRequest(_ context.Context, req models.QuestionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTopic}
	}

	for _, f := range fields {
		switch f {
		case FieldTopic:
			if blank(req.Topic) {
				return ErrEmptyTopic
			}
		case FieldCourseID:
			if req.CourseID <= 0 {
				return ErrInvalidCourseID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateFileUpload(_ context.Context, file models.FileUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if file.Reader == nil {
				return ErrNoFile
			}
		case FieldName:
			if blank(file.Name) {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
