package models

// Course is a department-scoped course as returned by the backend. Listing
// endpoints include denormalized names and aggregate counts alongside the
// raw foreign keys.
type Course struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	CreatedBy      int64  `json:"created_by,omitempty"`
	CreatorName    string `json:"creator_name,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	ResourceCount  int    `json:"resource_count,omitempty"`
	QuizCount      int    `json:"quiz_count,omitempty"`
}

// CourseInput is the request body for creating or updating a course.
type CourseInput struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	DepartmentID int64  `json:"department_id,omitempty"`
}

// Topic is the lightweight per-resource entry returned by the course topics
// endpoint, used to seed AI question generation.
type Topic struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
