package service

import (
	"context"
	"time"

	"github.com/academyhub/academy-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService owns the session lifecycle: logging in and out, restoring
// a persisted session, and reacting to authentication failures raised by any
// other service.
type ClientAuthService interface {
	// Login authenticates against the server. Failure is reported inside the
	// returned [models.LoginResult], never as an error, so callers render one
	// shape for both outcomes. On success the session is stored in memory,
	// persisted locally, and the bearer token is installed on the transport.
	Login(ctx context.Context, req models.LoginRequest) models.LoginResult

	// Register creates an account for a pre-approved email. Returns the
	// server's confirmation message.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// SelfRegister files a registration that awaits admin approval. Returns
	// the server's confirmation message.
	SelfRegister(ctx context.Context, req models.RegisterRequest) (string, error)

	// Logout tells the server to end the session, then unconditionally clears
	// the local session state. A failed server call never prevents the local
	// cleanup; the returned error reflects only the local cleanup.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted session, installs its token on the
	// transport, and returns it. Sessions whose token has already expired are
	// cleared and reported as [store.ErrLocalSessionNotFound].
	RestoreSession(ctx context.Context) (models.Session, error)

	// CheckAuth asks the server whether the current session is still valid.
	// An invalid session is cleared locally and reported as
	// [ErrSessionExpired].
	CheckAuth(ctx context.Context) error

	// CurrentSession returns the in-memory session; the zero value means no
	// session is active.
	CurrentSession() models.Session

	// IsAuthenticated reports whether an active session is held.
	IsAuthenticated() bool

	// Profile fetches the authenticated user's profile.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile edits the authenticated user's own profile and returns
	// the updated record.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// ChangePassword verifies the current password and installs a new one.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// HandleAuthError inspects an error from any API call: an unauthorized
	// error clears the local session and comes back as [ErrSessionExpired],
	// anything else passes through unchanged.
	HandleAuthError(ctx context.Context, err error) error
}

// ClientCourseService exposes course listing and management.
type ClientCourseService interface {
	// List returns the courses visible to the authenticated user.
	List(ctx context.Context) ([]models.Course, error)

	// Get returns one course by id.
	Get(ctx context.Context, id int64) (models.Course, error)

	// Topics returns the per-resource topic entries of a course, used to
	// seed AI question generation.
	Topics(ctx context.Context, courseID int64) ([]models.Topic, error)

	// ByDepartment lists the courses of one department.
	ByDepartment(ctx context.Context, departmentID int64) ([]models.Course, error)

	// AITutorCourse returns the dedicated AI tutor course.
	AITutorCourse(ctx context.Context) (models.Course, error)

	// Create adds a course. Instructor or admin role required server-side.
	Create(ctx context.Context, input models.CourseInput) (models.Course, error)

	// Update edits a course.
	Update(ctx context.Context, id int64, input models.CourseInput) (models.Course, error)

	// Delete removes a course and its content.
	Delete(ctx context.Context, id int64) error
}

// ClientResourceService exposes course material management and the student
// progress calls.
type ClientResourceService interface {
	// List returns the resources of a course. courseID 0 lists everything
	// the user can see.
	List(ctx context.Context, courseID int64) ([]models.Resource, error)

	// Get returns one resource by id.
	Get(ctx context.Context, id int64) (models.Resource, error)

	// Create adds a text or link resource (no file payload).
	Create(ctx context.Context, input models.ResourceInput) (models.Resource, error)

	// Update edits a resource's metadata, and its text content for text
	// resources.
	Update(ctx context.Context, id int64, input models.ResourceInput) (models.Resource, error)

	// UploadFile adds a file-backed resource via multipart upload. onProgress,
	// when non-nil, receives the upload progress events.
	UploadFile(ctx context.Context, input models.ResourceInput, file models.FileUpload, onProgress func(models.UploadProgress)) (models.Resource, error)

	// UpdateProgress records the student's progress on a resource and returns
	// the stored progress row.
	UpdateProgress(ctx context.Context, resourceID int64, update models.ProgressUpdate) (models.Progress, error)

	// MarkViewed stamps the resource as accessed by the student.
	MarkViewed(ctx context.Context, resourceID int64) error

	// Download fetches the resource's file content and its MIME type.
	Download(ctx context.Context, resourceID int64) ([]byte, string, error)

	// Delete removes a resource.
	Delete(ctx context.Context, id int64) error
}

// ClientQuizService exposes quiz taking and management.
type ClientQuizService interface {
	// List returns the quizzes of a course. courseID 0 lists everything the
	// user can see.
	List(ctx context.Context, courseID int64) ([]models.Quiz, error)

	// Get returns one quiz together with its questions. Correct answers are
	// stripped by the server for students.
	Get(ctx context.Context, id int64) (models.Quiz, []models.QuizQuestion, error)

	// Create adds a quiz with its questions.
	Create(ctx context.Context, input models.QuizInput) (models.Quiz, error)

	// Update edits a quiz's title, topic, and description.
	Update(ctx context.Context, id int64, input models.QuizInput) (models.Quiz, error)

	// Submit grades the student's answers and returns the graded submission.
	// Answers maps question IDs to submitted answers.
	Submit(ctx context.Context, quizID int64, answers map[string]string) (models.QuizSubmission, error)

	// Results returns the student's graded attempt on a quiz with the full
	// question review.
	Results(ctx context.Context, quizID int64) (models.QuizResults, error)

	// History lists the student's past submissions.
	History(ctx context.Context) ([]models.QuizSubmission, error)

	// Import uploads a quiz definition file. Returns the server's
	// confirmation message.
	Import(ctx context.Context, file models.FileUpload, onProgress func(models.UploadProgress)) (string, error)

	// Delete removes a quiz.
	Delete(ctx context.Context, id int64) error
}

// ClientTutorService exposes the AI tutor endpoints. All calls retry
// transient failures with exponential backoff, since the AI provider behind
// them is the least reliable dependency of the platform.
type ClientTutorService interface {
	// Ask sends a free-form question, optionally scoped to one resource.
	Ask(ctx context.Context, question models.TutorQuestion) (models.TutorAnswer, error)

	// GenerateQuestions produces quiz questions for a topic.
	GenerateQuestions(ctx context.Context, req models.QuestionRequest) ([]models.QuizQuestion, error)

	// CreateQuiz generates and stores a complete quiz for a topic.
	CreateQuiz(ctx context.Context, req models.QuestionRequest) (models.Quiz, error)

	// EvaluateAnswer grades a short answer against the expected one.
	EvaluateAnswer(ctx context.Context, eval models.AnswerEvaluation) (models.EvaluationResult, error)

	// Status reports whether the AI provider is configured and reachable.
	Status(ctx context.Context) (models.AIStatus, error)
}

// ClientAdminService exposes the admin console operations.
type ClientAdminService interface {
	// Dashboard returns the aggregate counters of the admin landing page.
	Dashboard(ctx context.Context) (models.DashboardStats, error)

	// Users lists accounts, narrowed by filter.
	Users(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// UpdateUser edits an account and returns the updated record.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id int64) error

	// PendingUsers lists self-registrations awaiting approval.
	PendingUsers(ctx context.Context) ([]models.PendingUser, error)

	// ApproveUser approves one pending self-registration.
	ApproveUser(ctx context.Context, id int64) error

	// DenyUser rejects one pending self-registration.
	DenyUser(ctx context.Context, id int64) error

	// ApproveAllUsers approves every pending self-registration and returns
	// how many were approved.
	ApproveAllUsers(ctx context.Context) (int, error)

	// Departments lists all departments.
	Departments(ctx context.Context) ([]models.Department, error)

	// CreateDepartment adds a department.
	CreateDepartment(ctx context.Context, name, description string) (models.Department, error)

	// UpdateDepartment renames a department or changes its description.
	UpdateDepartment(ctx context.Context, id int64, name, description string) (models.Department, error)

	// DeleteDepartment removes a department.
	DeleteDepartment(ctx context.Context, id int64) error

	// ImportUsers uploads a pre-approved user roster file. Returns the
	// server's confirmation message.
	ImportUsers(ctx context.Context, file models.FileUpload, onProgress func(models.UploadProgress)) (string, error)

	// ExportUsers downloads the user roster and returns the raw file with
	// its MIME type.
	ExportUsers(ctx context.Context) ([]byte, string, error)

	// Analytics returns the platform analytics document.
	Analytics(ctx context.Context) (models.Analytics, error)

	// AILogs lists recorded AI tutor calls.
	AILogs(ctx context.Context) ([]models.AILogEntry, error)

	// SystemHealth returns the backend's self-reported component status.
	SystemHealth(ctx context.Context) (models.SystemHealth, error)
}

// ClientSessionJob is a background worker that periodically re-validates the
// stored session so an expired token is noticed before the user's next action.
type ClientSessionJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins. The goroutine exits on
	// its own once the session expires.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
