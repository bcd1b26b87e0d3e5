package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail         = errors.New("email is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyTopic         = errors.New("topic is required")
	ErrEmptyQuestion      = errors.New("question is required")
	ErrInvalidCourseID    = errors.New("invalid course ID")
	ErrInvalidType        = errors.New("invalid resource type")
	ErrMissingContent     = errors.New("a link resource needs a URL, a text resource needs content")
	ErrNoQuestions        = errors.New("questions list cannot be empty")
	ErrNoAnswers          = errors.New("answers map cannot be empty")
	ErrNoFile             = errors.New("file content is required")
	ErrSamePassword       = errors.New("new password must differ from the current one")
	ErrEmptyCurrent       = errors.New("current password is required")
	ErrInvalidQuizOptions = errors.New("a multiple choice question needs at least two options")
)
