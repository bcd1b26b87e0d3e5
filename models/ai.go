package models

// TutorQuestion is the request body for asking the AI tutor a question.
// ResourceID optionally scopes the question to one resource's content.
type TutorQuestion struct {
	Question   string `json:"question"`
	ResourceID int64  `json:"resource_id,omitempty"`
}

// TutorAnswer is the AI tutor's reply.
type TutorAnswer struct {
	Answer         string  `json:"answer"`
	ProcessingTime float64 `json:"processing_time,omitempty"`
}

// QuestionRequest is the request body for AI quiz-question generation.
type QuestionRequest struct {
	Topic        string `json:"topic"`
	ResourceID   int64  `json:"resource_id,omitempty"`
	CourseID     int64  `json:"course_id,omitempty"`
	NumQuestions int    `json:"num_questions,omitempty"`
}

// AnswerEvaluation is the request body for AI grading of a short answer.
type AnswerEvaluation struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// EvaluationResult is the AI grader's verdict on a short answer.
type EvaluationResult struct {
	Correct  bool    `json:"correct"`
	Score    float64 `json:"score,omitempty"`
	Feedback string  `json:"feedback,omitempty"`
}

// AIStatus reports whether the AI provider behind the tutor endpoints is
// configured and reachable.
type AIStatus struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
}
