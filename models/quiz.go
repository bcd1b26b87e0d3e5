package models

// QuestionType distinguishes the two supported quiz question formats.
type QuestionType string

// Known question types.
const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// Quiz is a course-bound quiz with its aggregate question count.
type Quiz struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	CourseID      int64  `json:"course_id"`
	CourseTitle   string `json:"course_title,omitempty"`
	Topic         string `json:"topic"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	QuestionCount int    `json:"question_count,omitempty"`
}

// QuizQuestion is a single question within a quiz. Options is populated only
// for multiple-choice questions.
type QuizQuestion struct {
	ID           int64        `json:"id,omitempty"`
	QuizID       int64        `json:"quiz_id,omitempty"`
	QuestionType QuestionType `json:"question_type"`
	Question     string       `json:"question"`
	Options      []string     `json:"options,omitempty"`
	Answer       string       `json:"answer,omitempty"`
	Explanation  string       `json:"explanation,omitempty"`
	Points       int          `json:"points,omitempty"`
}

// QuizInput is the request body for creating or updating a quiz together
// with its questions.
type QuizInput struct {
	Title       string         `json:"title"`
	CourseID    int64          `json:"course_id"`
	Topic       string         `json:"topic"`
	Description string         `json:"description,omitempty"`
	Questions   []QuizQuestion `json:"questions,omitempty"`
}

// QuizSubmission is a graded quiz attempt. Answers maps question IDs to the
// student's submitted answers.
type QuizSubmission struct {
	ID          int64             `json:"id"`
	QuizID      int64             `json:"quiz_id"`
	UserID      int64             `json:"user_id"`
	Score       float64           `json:"score"`
	MaxScore    float64           `json:"max_score"`
	Percentage  float64           `json:"percentage"`
	Answers     map[string]string `json:"answers,omitempty"`
	SubmittedAt string            `json:"submitted_at,omitempty"`
	CreatedAt   string            `json:"created_at,omitempty"`
}

// QuizResults bundles a submission with the quiz and its questions so the
// caller can render a full review.
type QuizResults struct {
	Submission QuizSubmission `json:"submission"`
	Quiz       Quiz           `json:"quiz"`
	Questions  []QuizQuestion `json:"questions"`
}
