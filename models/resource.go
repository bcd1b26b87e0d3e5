package models

// ResourceType is the content kind of a course resource.
type ResourceType string

// Known resource types.
const (
	ResourcePDF   ResourceType = "pdf"
	ResourceText  ResourceType = "text"
	ResourceLink  ResourceType = "link"
	ResourceVideo ResourceType = "video"
)

// Resource is a single piece of course material.
type Resource struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Type          ResourceType `json:"type"`
	CourseID      int64        `json:"course_id"`
	CourseTitle   string       `json:"course_title,omitempty"`
	FilePathOrURL string       `json:"file_path_or_url,omitempty"`
	TextContent   string       `json:"text_content,omitempty"`
	Description   string       `json:"description,omitempty"`
	CreatedAt     string       `json:"created_at,omitempty"`
}

// ResourceInput is the request body for creating or updating a non-file
// resource (text content or an external link).
type ResourceInput struct {
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	CourseID    int64        `json:"course_id"`
	URL         string       `json:"url,omitempty"`
	TextContent string       `json:"text_content,omitempty"`
	Description string       `json:"description,omitempty"`
}

// ProgressStatus is a student's completion state for a resource.
type ProgressStatus string

// Known progress states.
const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// Progress is a student's tracked progress on one resource.
type Progress struct {
	ID                   int64          `json:"id"`
	UserID               int64          `json:"user_id"`
	ResourceID           int64          `json:"resource_id"`
	Status               ProgressStatus `json:"status"`
	LastAccessedAt       string         `json:"last_accessed_at,omitempty"`
	CompletionPercentage float64        `json:"completion_percentage"`
	CreatedAt            string         `json:"created_at,omitempty"`
}

// ProgressUpdate is the request body for reporting progress on a resource.
type ProgressUpdate struct {
	Status               ProgressStatus `json:"status"`
	CompletionPercentage float64        `json:"completion_percentage"`
}
