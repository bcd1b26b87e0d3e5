package models

import "encoding/json"

// DashboardStats is the aggregate counter set shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers      int     `json:"total_users"`
	PendingUsers    int     `json:"pending_users"`
	TotalCourses    int     `json:"total_courses"`
	TotalResources  int     `json:"total_resources"`
	TotalQuizzes    int     `json:"total_quizzes"`
	ActiveUsers     int     `json:"active_users"`
	RecentCourses   int     `json:"recent_courses"`
	RecentResources int     `json:"recent_resources"`
	TotalAICalls    int     `json:"total_ai_calls"`
	AISuccessRate   float64 `json:"ai_success_rate"`
	Students        int     `json:"students"`
	Instructors     int     `json:"instructors"`
	Admins          int     `json:"admins"`
	ActiveCourses   int     `json:"active_courses"`
}

// UserFilter narrows admin user listings. Zero values mean "no filter".
type UserFilter struct {
	Search       string
	Role         Role
	DepartmentID int64
	Status       UserStatus
}

// UserUpdate is the request body for an admin edit of a user account.
// Nil fields are left unchanged.
type UserUpdate struct {
	Name         *string     `json:"name,omitempty"`
	Role         *Role       `json:"role,omitempty"`
	DepartmentID *int64      `json:"department_id,omitempty"`
	Status       *UserStatus `json:"status,omitempty"`
}

// PendingUser is an account pre-approved for registration but not yet
// registered.
type PendingUser struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	ApprovedBy     int64  `json:"approved_by,omitempty"`
	ApprovedAt     string `json:"approved_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// AILogEntry is one recorded AI tutor call, as listed in the admin log view.
type AILogEntry struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	UserName       string          `json:"user_name,omitempty"`
	Endpoint       string          `json:"endpoint"`
	RequestData    json.RawMessage `json:"request_data,omitempty"`
	ResponseData   json.RawMessage `json:"response_data,omitempty"`
	Success        bool            `json:"success"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	ProcessingTime float64         `json:"processing_time,omitempty"`
	CreatedAt      string          `json:"created_at,omitempty"`
}

// SystemHealth is the backend's self-reported component status.
type SystemHealth struct {
	Status     string          `json:"status"`
	Components json.RawMessage `json:"components,omitempty"`
	CheckedAt  string          `json:"checked_at,omitempty"`
}

// Analytics carries the admin analytics payload. The backend's shape varies
// between deployments, so the whole document is kept raw for the caller.
type Analytics struct {
	Data json.RawMessage `json:"data"`
}
